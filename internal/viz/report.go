package viz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/tanlut/internal/analysis"
	"github.com/san-kum/tanlut/internal/lut"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(BorderColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return s.Inherit(HeaderStyle)
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		})
}

// Entries lists every table entry with its sample angle and real value.
func Entries(t *lut.Table) string {
	f := t.Meta.Format()
	limit := f.Max()

	tb := newTable("i", "deg", "tan", "raw", "value")
	for i, v := range t.Values {
		x := t.Meta.Angle(i)
		raw := strconv.FormatInt(v, 10)
		if v == limit {
			raw = Warn.Render(raw + " (sat)")
		}
		tb.Row(
			strconv.Itoa(i),
			fmt.Sprintf("%.3f", x*180/math.Pi),
			fmt.Sprintf("%.6f", math.Tan(x)),
			raw,
			fmt.Sprintf("%.6f", f.Float(v)),
		)
	}
	return tb.Render()
}

// Deviations renders a sweep. Rows above ignoreDeg are shown muted and rows
// beyond maxPercent are highlighted.
func Deviations(devs []analysis.Deviation, maxPercent, ignoreDeg float64) string {
	tb := newTable("deg", "rad", "std tan", "lut tan", "dev")
	for _, d := range devs {
		dev := fmt.Sprintf("%.3f%%", d.Percent)
		switch {
		case d.Degrees > ignoreDeg:
			dev = Ignored.Render(dev)
		case math.Abs(d.Percent) > maxPercent:
			dev = Bad.Render(dev)
		default:
			dev = Good.Render(dev)
		}
		tb.Row(
			fmt.Sprintf("%.0f°", d.Degrees),
			fmt.Sprintf("%.3f", d.Radians),
			fmt.Sprintf("%.3f", d.Reference),
			fmt.Sprintf("%.3f", d.Approx),
			dev,
		)
	}
	return tb.Render()
}

func SummaryLine(s analysis.Summary) string {
	parts := []string{
		MetricLabel.Render("samples ") + MetricValue.Render(strconv.Itoa(s.Samples)),
		MetricLabel.Render("max abs ") + MetricValue.Render(fmt.Sprintf("%.6f", s.MaxAbs)),
		MetricLabel.Render("max rel ") + MetricValue.Render(fmt.Sprintf("%.3f%%", s.MaxPercent)),
		MetricLabel.Render("at ") + MetricValue.Render(fmt.Sprintf("%.0f°", s.WorstDegrees)),
		MetricLabel.Render("rms ") + MetricValue.Render(fmt.Sprintf("%.6f", s.RMS)),
	}
	return strings.Join(parts, Subtle.Render("  │  "))
}

func Comparison(results []analysis.Result) string {
	tb := newTable("preset", "N", "bits", "frac", "sat", "max abs", "max rel", "worst", "rms")
	for _, r := range results {
		tb.Row(
			r.Name,
			strconv.Itoa(r.Meta.Entries),
			strconv.Itoa(int(r.Meta.TotalBits)),
			strconv.Itoa(int(r.Meta.FracBits)),
			strconv.Itoa(r.Saturated),
			fmt.Sprintf("%.6f", r.Summary.MaxAbs),
			fmt.Sprintf("%.3f%%", r.Summary.MaxPercent),
			fmt.Sprintf("%.0f°", r.Summary.WorstDegrees),
			fmt.Sprintf("%.6f", r.Summary.RMS),
		)
	}
	return tb.Render()
}
