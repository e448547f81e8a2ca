package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tanlut/internal/analysis"
	"github.com/san-kum/tanlut/internal/smoother"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// DeviationPlot draws the relative deviation of a sweep in percent.
func DeviationPlot(devs []analysis.Deviation) string {
	if len(devs) == 0 {
		return ""
	}
	data := make([]float64, len(devs))
	for i, d := range devs {
		data[i] = d.Percent
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("deviation (%) vs angle"),
	)
}

// StepPlot overlays the float and fixed step responses.
func StepPlot(rows []smoother.Sample) string {
	if len(rows) == 0 {
		return ""
	}
	input := make([]float64, len(rows))
	fl := make([]float64, len(rows))
	fx := make([]float64, len(rows))
	for i, r := range rows {
		input[i] = r.Input
		fl[i] = r.Float
		fx[i] = float64(r.Fixed)
	}
	return asciigraph.PlotMany([][]float64{input, fl, fx},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Default, asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("step response: input, float, fixed"),
	)
}
