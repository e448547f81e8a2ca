// Package fixed converts real numbers to signed fixed-point integers.
//
// A value raw in a [Format] with F fractional bits represents raw / 2^F.
// Conversions saturate at ±Max and never wrap around.
package fixed

import "math"

// Format is a signed two's-complement fixed-point layout.
type Format struct {
	TotalBits uint8
	FracBits  uint8
}

// Max is the largest representable raw value, 2^(TotalBits-1) - 1.
func (f Format) Max() int64 {
	return int64(1)<<(f.TotalBits-1) - 1
}

// One is the raw value of 1.0.
func (f Format) One() int64 {
	return int64(1) << f.FracBits
}

// Quantize truncates y*2^F toward zero and clamps the result to [-Max, Max].
// The lower bound is -Max rather than the two's-complement minimum so that
// every quantized value can be negated. NaN quantizes to zero.
func (f Format) Quantize(y float64) int64 {
	if math.IsNaN(y) {
		return 0
	}
	scaled := y * float64(f.One())
	limit := float64(f.Max())
	switch {
	case scaled >= limit:
		return f.Max()
	case scaled <= -limit:
		return -f.Max()
	}
	return int64(scaled)
}

// Saturate clamps an already scaled raw value to [-Max, Max].
func (f Format) Saturate(v int64) int64 {
	m := f.Max()
	if v > m {
		return m
	}
	if v < -m {
		return -m
	}
	return v
}

// Float converts a raw value back to a real number.
func (f Format) Float(raw int64) float64 {
	return float64(raw) / float64(f.One())
}
