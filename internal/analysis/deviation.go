package analysis

import (
	"math"

	"github.com/san-kum/tanlut/internal/tan"
)

// Deviation compares the table result with math.Tan at one angle.
type Deviation struct {
	Degrees   float64
	Radians   float64
	Reference float64
	Approx    float64
	Abs       float64
	Percent   float64 // relative to Reference, 0 where Reference is 0
}

// Sweep evaluates f from fromDeg to toDeg inclusive in steps of stepDeg.
func Sweep(f tan.Func, fromDeg, toDeg, stepDeg float64) []Deviation {
	if stepDeg <= 0 || toDeg < fromDeg {
		return nil
	}

	steps := int(math.Floor((toDeg-fromDeg)/stepDeg+1e-9)) + 1
	devs := make([]Deviation, 0, steps)

	for i := 0; i < steps; i++ {
		deg := fromDeg + float64(i)*stepDeg
		x := deg * math.Pi / 180

		ref := math.Tan(x)
		approx := f.TanFloat(x)

		d := Deviation{
			Degrees:   deg,
			Radians:   x,
			Reference: ref,
			Approx:    approx,
			Abs:       approx - ref,
		}
		if ref != 0 {
			d.Percent = d.Abs * 100 / ref
		}
		devs = append(devs, d)
	}

	return devs
}

type Summary struct {
	Samples      int
	MaxAbs       float64
	MaxPercent   float64
	RMS          float64
	WorstDegrees float64 // angle of MaxPercent
}

func Summarize(devs []Deviation) Summary {
	s := Summary{Samples: len(devs)}
	if len(devs) == 0 {
		return s
	}

	sumSq := 0.0
	for _, d := range devs {
		if a := math.Abs(d.Abs); a > s.MaxAbs {
			s.MaxAbs = a
		}
		if p := math.Abs(d.Percent); p > s.MaxPercent {
			s.MaxPercent = p
			s.WorstDegrees = d.Degrees
		}
		sumSq += d.Abs * d.Abs
	}
	s.RMS = math.Sqrt(sumSq / float64(len(devs)))

	return s
}
