// Package tanlut holds the lookup table for the fixed-point tangent function.
//
// tan_lut.go is generated; regenerate it with go generate instead of editing it.
package tanlut

//go:generate go run ../../cmd/tanlut
