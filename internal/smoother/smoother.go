// Package smoother implements a dynamic smoothing filter for control signals.
//
// Two cascaded one-pole lowpasses share a cutoff that opens up with the
// difference between them (a bandpass response), so slow changes are
// smoothed heavily while fast changes follow quickly. The base cutoff is
// prewarped with tan(π * f/fs), taken from the lookup table evaluator.
package smoother

import (
	"math"

	"github.com/san-kum/tanlut/internal/tan"
)

// Eco is the floating point variant.
type Eco struct {
	low1, low2 float64
	g0         float64
	sense      float64
}

// NewEco returns a smoother with cutoff basefreq at samplerate. basefreq
// must stay below samplerate/2.
func NewEco(f tan.Func, basefreq, samplerate, sensitivity float64) *Eco {
	wc := basefreq / samplerate
	gc := f.TanFloat(math.Pi * wc)

	return &Eco{
		g0:    2 * gc / (1 + gc),
		sense: sensitivity * 4,
	}
}

func (s *Eco) Clear() {
	s.low1 = 0
	s.low2 = 0
}

// Tick processes one input sample and returns the smoothed output.
func (s *Eco) Tick(input float64) float64 {
	low1z := s.low1
	low2z := s.low2

	bandz := math.Abs(low1z - low2z)
	g := math.Min(s.g0+s.sense*bandz, 1)

	s.low1 = low1z + g*(input-low1z)
	s.low2 = low2z + g*(s.low1-low2z)

	return s.low2
}

// internalFracBits extends the input resolution inside EcoFixed.
const internalFracBits = 8

// EcoFixed is the integer variant. Parameters carry the evaluator's
// fractional bits; inputs and outputs are plain integers whose magnitude
// must stay below 2^(31-internalFracBits).
type EcoFixed struct {
	low1, low2 int32
	g0         int32
	sense      int32
	fracBits   uint8
}

// NewEcoFixed takes basefreq, samplerate and sensitivity scaled by
// 2^FracBits; samplerate * 2^FracBits must fit in int32.
func NewEcoFixed(e *tan.Evaluator[int32], basefreq, samplerate, sensitivity int32) *EcoFixed {
	fb := e.FracBits()
	one := int64(1) << fb

	wc := int64(basefreq) * one / int64(samplerate)
	gc := int64(e.Phase(wc))
	g0 := (2 * gc << fb) / (one + gc)

	return &EcoFixed{
		g0:       int32(g0),
		sense:    sensitivity * 4,
		fracBits: fb,
	}
}

func (s *EcoFixed) Clear() {
	s.low1 = 0
	s.low2 = 0
}

func (s *EcoFixed) Tick(input int32) int32 {
	in := input << internalFracBits

	low1z := s.low1
	low2z := s.low2

	bandz := low1z - low2z
	if bandz < 0 {
		bandz = -bandz
	}

	one := int64(1) << s.fracBits
	g := min(int64(s.g0)+(int64(s.sense)*int64(bandz))>>internalFracBits, one)

	s.low1 = int32(int64(low1z) + (g*int64(in-low1z))>>s.fracBits)
	s.low2 = int32(int64(low2z) + (g*int64(s.low1-low2z))>>s.fracBits)

	return s.low2 >> internalFracBits
}

// Sample is one row of a step response.
type Sample struct {
	Input float64
	Float float64
	Fixed int32
}

// StepResponse feeds both variants n samples of level followed by n samples
// of level*ratio.
func StepResponse(e *tan.Evaluator[int32], basefreq, samplerate, sensitivity, level, ratio float64, n int) []Sample {
	scale := float64(int64(1) << e.FracBits())

	fl := NewEco(e, basefreq, samplerate, sensitivity)
	fx := NewEcoFixed(e,
		int32(basefreq*scale),
		int32(samplerate*scale),
		int32(sensitivity*scale),
	)

	out := make([]Sample, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		in := level
		if i >= n {
			in = level * ratio
		}
		out = append(out, Sample{
			Input: in,
			Float: fl.Tick(in),
			Fixed: fx.Tick(int32(in)),
		})
	}
	return out
}
