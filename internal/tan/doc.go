// Package tan evaluates the tangent function from a quantized lookup table.
//
// The table holds tan(x) for x = i/N * π/2, i in [0, N), as signed
// fixed-point integers with F fractional bits. An [Evaluator] reduces its
// input into [0, π/2] using the period π and the symmetry
// tan(π - x) = -tan(x), locates the two bracketing entries and interpolates
// between them in integer arithmetic:
//
//	pos    = x / (π/2) * N            (F-bit fixed point)
//	i0     = min(pos >> F, N-2)
//	frac   = pos - i0 << F
//	result = t[i0] + round(frac * (t[i0+1] - t[i0]) / 2^F)
//
// Past the last sample the line is extrapolated toward the pole and
// saturated at the largest value of the element type.
//
// # Entry points
//
//   - [Evaluator.Radians]: angle in radians.
//   - [Evaluator.Phase]: angle in F-bit fixed-point half-turns, where 1<<F
//     stands for π. This is also the normalized frequency f/fs used when
//     prewarping filter cutoffs, and it never touches floating point.
//
// # Thread Safety
//
// An Evaluator never mutates its table after construction and can be shared
// between goroutines.
package tan
