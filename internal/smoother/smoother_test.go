package smoother

import (
	"math"
	"testing"

	"github.com/san-kum/tanlut/internal/tan"
)

// Parameters from the original paper: 2 Hz base cutoff at 1 kHz.
const (
	basefreq    = 2.0
	samplerate  = 1000.0
	sensitivity = 0.5
)

func TestStepResponseDefault(t *testing.T) {
	rows := StepResponse(tan.Default(), basefreq, samplerate, sensitivity, 1000, 0.9, 10)

	if len(rows) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(rows))
	}

	for _, i := range []int{9, 19} {
		r := rows[i]
		if math.Abs(r.Float-r.Input) > 1 {
			t.Errorf("sample %d: float output %.3f did not follow input %.0f", i, r.Float, r.Input)
		}
		if math.Abs(float64(r.Fixed)-r.Input) > 1 {
			t.Errorf("sample %d: fixed output %d did not follow input %.0f", i, r.Fixed, r.Input)
		}
	}
}

func TestStepResponseLowpass(t *testing.T) {
	rows := StepResponse(tan.Default(), basefreq, samplerate, 0, 1000, 0.9, 50)

	prev := 0.0
	for i, r := range rows[:50] {
		if r.Float < prev {
			t.Errorf("sample %d: output decreased on a rising step", i)
		}
		prev = r.Float
	}
	if rows[49].Float > 200 {
		t.Errorf("expected heavy smoothing without sensitivity, got %.3f", rows[49].Float)
	}

	for i, r := range rows {
		if math.Abs(r.Float-float64(r.Fixed)) > 3 {
			t.Errorf("sample %d: float %.3f and fixed %d diverge", i, r.Float, r.Fixed)
		}
	}
}

func TestStepResponseConverges(t *testing.T) {
	rows := StepResponse(tan.Default(), 20, samplerate, 0, 1000, 0.9, 200)

	if r := rows[199]; math.Abs(r.Float-1000) > 0.01 || math.Abs(float64(r.Fixed)-1000) > 1 {
		t.Errorf("expected ~1000, got %.3f / %d", r.Float, r.Fixed)
	}
	if r := rows[399]; math.Abs(r.Float-900) > 0.01 || math.Abs(float64(r.Fixed)-900) > 1 {
		t.Errorf("expected ~900, got %.3f / %d", r.Float, r.Fixed)
	}
}

func TestClear(t *testing.T) {
	e := tan.Default()
	fl := NewEco(e, basefreq, samplerate, 0)
	fx := NewEcoFixed(e, basefreq*65536, samplerate*65536, 0)

	first := fl.Tick(1000)
	firstFixed := fx.Tick(1000)
	for i := 0; i < 10; i++ {
		fl.Tick(1000)
		fx.Tick(1000)
	}

	fl.Clear()
	fx.Clear()

	if got := fl.Tick(1000); got != first {
		t.Errorf("expected %.6f after clear, got %.6f", first, got)
	}
	if got := fx.Tick(1000); got != firstFixed {
		t.Errorf("expected %d after clear, got %d", firstFixed, got)
	}
}
