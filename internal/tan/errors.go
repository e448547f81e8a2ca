package tan

import "errors"

var (
	// ErrTableTooShort indicates fewer than two entries to interpolate between.
	ErrTableTooShort = errors.New("tan: table needs at least two entries")

	// ErrFracBits indicates a fractional bit count the interpolation cannot hold in int64.
	ErrFracBits = errors.New("tan: fractional bits out of range")

	// ErrWordSize indicates an element type wider than 32 bits.
	ErrWordSize = errors.New("tan: element type wider than 32 bits")
)
