package tan

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/san-kum/tanlut/internal/lut"
	"github.com/san-kum/tanlut/internal/tanlut"
)

const maxFracBits = 30

// Func is the element-type independent view of an Evaluator.
type Func interface {
	TanFloat(x float64) float64
	Len() int
	FracBits() uint8
}

// Evaluator computes tan from a first-quadrant table of fixed-point values
// with element type T. It never modifies the table and is safe for
// concurrent use.
type Evaluator[T constraints.Signed] struct {
	table    []T
	n        int64
	fracBits uint8
	max      int64
}

// New wraps table without copying it; the caller must not modify it afterwards.
func New[T constraints.Signed](table []T, fracBits uint8) (*Evaluator[T], error) {
	if len(table) < 2 {
		return nil, ErrTableTooShort
	}
	if fracBits < 1 || fracBits > maxFracBits {
		return nil, fmt.Errorf("%w: %d", ErrFracBits, fracBits)
	}
	size := wordBits[T]()
	if size > 32 {
		return nil, fmt.Errorf("%w: %d bits", ErrWordSize, size)
	}
	if uint(fracBits) >= size {
		return nil, fmt.Errorf("%w: %d for a %d-bit word", ErrFracBits, fracBits, size)
	}

	return &Evaluator[T]{
		table:    table,
		n:        int64(len(table)),
		fracBits: fracBits,
		max:      int64(1)<<(size-1) - 1,
	}, nil
}

// wordBits counts the bits of T by shifting a one out of the word.
func wordBits[T constraints.Signed]() uint {
	var n uint
	for v := T(1); v != 0; v <<= 1 {
		n++
	}
	return n
}

// FromTable copies a generated table into an evaluator with element type T.
// Values that do not fit T are saturated.
func FromTable[T constraints.Signed](t *lut.Table) (*Evaluator[T], error) {
	values := make([]T, len(t.Values))
	limit := int64(1)<<(wordBits[T]()-1) - 1
	for i, v := range t.Values {
		values[i] = T(min(max(v, -limit), limit))
	}
	return New(values, t.Meta.FracBits)
}

// Build picks the element type from the table's word width.
func Build(t *lut.Table) (Func, error) {
	switch t.Meta.TotalBits {
	case 8:
		return FromTable[int8](t)
	case 16:
		return FromTable[int16](t)
	case 32:
		return FromTable[int32](t)
	}
	return nil, fmt.Errorf("%w: %d bits", ErrWordSize, t.Meta.TotalBits)
}

// Default returns an evaluator over the generated table in package tanlut.
func Default() *Evaluator[int32] {
	e, err := New(tanlut.TanLUT[:], tanlut.TanLUTFracBits)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Evaluator[T]) Len() int        { return int(e.n) }
func (e *Evaluator[T]) FracBits() uint8 { return e.fracBits }

// Max is the saturation bound of the results.
func (e *Evaluator[T]) Max() T { return T(e.max) }

// Radians returns tan(x) with x in radians. Non-finite x gives an
// unspecified result.
func (e *Evaluator[T]) Radians(x float64) T {
	neg := x < 0
	a := math.Mod(math.Abs(x), math.Pi)
	if a > math.Pi/2 {
		a = math.Pi - a
		neg = !neg
	}

	pos := int64(a / (math.Pi / 2) * float64(e.n<<e.fracBits))
	return e.signed(e.interpolate(pos), neg)
}

// Phase returns tan(π * p / 2^F), p being a fixed-point angle in half-turns.
func (e *Evaluator[T]) Phase(p int64) T {
	half := int64(1) << e.fracBits
	r := p & (half - 1)

	neg := false
	if r > half/2 {
		r = half - r
		neg = true
	}

	return e.signed(e.interpolate(r*2*e.n), neg)
}

// TanFloat is Radians scaled back to a real number.
func (e *Evaluator[T]) TanFloat(x float64) float64 {
	return e.Float(e.Radians(x))
}

// Float converts a result to a real number.
func (e *Evaluator[T]) Float(v T) float64 {
	return float64(v) / float64(int64(1)<<e.fracBits)
}

// interpolate maps a fixed-point table position in [0, N<<F] to a
// non-negative result no larger than max.
func (e *Evaluator[T]) interpolate(pos int64) int64 {
	i0 := pos >> e.fracBits
	if i0 > e.n-2 {
		i0 = e.n - 2
	}
	// Only reachable through non-finite input to Radians.
	if i0 < 0 {
		i0 = 0
	}
	frac := pos - i0<<e.fracBits

	t0 := int64(e.table[i0])
	t1 := int64(e.table[i0+1])
	round := int64(1) << (e.fracBits - 1)

	v := t0 + (frac*(t1-t0)+round)>>e.fracBits
	if v > e.max {
		return e.max
	}
	return v
}

func (e *Evaluator[T]) signed(v int64, neg bool) T {
	if neg {
		return T(-v)
	}
	return T(v)
}
