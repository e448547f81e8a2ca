// Package lut generates quantized tangent samples over the first quadrant.
package lut

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/tanlut/internal/config"
	"github.com/san-kum/tanlut/internal/fixed"
)

var (
	// ErrInvariant indicates a table that breaks one of its structural invariants.
	ErrInvariant = errors.New("lut: table invariant violated")
)

// Metadata is persisted next to the table values.
type Metadata struct {
	Entries   int
	FracBits  uint8
	TotalBits uint8
}

func (m Metadata) Format() fixed.Format {
	return fixed.Format{TotalBits: m.TotalBits, FracBits: m.FracBits}
}

// Table holds tan(i/N * π/2) for i in [0, N).
type Table struct {
	Meta   Metadata
	Values []int64
}

// Angle returns the sample angle of entry i in radians.
func (m Metadata) Angle(i int) float64 {
	return float64(i) / float64(m.Entries) * math.Pi / 2
}

// Generate samples tan over [0, π/2) and quantizes every sample. The pole
// itself is never evaluated.
func Generate(cfg config.Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	meta := Metadata{
		Entries:   cfg.Entries,
		FracBits:  cfg.FracBits,
		TotalBits: cfg.TotalBits,
	}
	f := meta.Format()

	values := make([]int64, meta.Entries)
	for i := range values {
		values[i] = f.Quantize(math.Tan(meta.Angle(i)))
	}

	return &Table{Meta: meta, Values: values}, nil
}

// Check verifies length, the zero origin, monotonicity and the saturation bound.
func (t *Table) Check() error {
	if len(t.Values) != t.Meta.Entries {
		return fmt.Errorf("%w: expected %d entries, got %d", ErrInvariant, t.Meta.Entries, len(t.Values))
	}
	if len(t.Values) == 0 {
		return fmt.Errorf("%w: empty table", ErrInvariant)
	}
	if t.Values[0] != 0 {
		return fmt.Errorf("%w: entry 0 is %d, expected 0", ErrInvariant, t.Values[0])
	}
	limit := t.Meta.Format().Max()
	for i, v := range t.Values {
		if v > limit || v < -limit {
			return fmt.Errorf("%w: entry %d (%d) exceeds bound %d", ErrInvariant, i, v, limit)
		}
		if i > 0 && v < t.Values[i-1] {
			return fmt.Errorf("%w: entry %d (%d) below entry %d (%d)", ErrInvariant, i, v, i-1, t.Values[i-1])
		}
	}
	return nil
}

// Saturated counts the entries clamped to the bound.
func (t *Table) Saturated() int {
	limit := t.Meta.Format().Max()
	n := 0
	for _, v := range t.Values {
		if v == limit {
			n++
		}
	}
	return n
}
