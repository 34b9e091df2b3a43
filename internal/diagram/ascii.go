package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// SweepChartData holds one performance sweep for charting. Slices are
// parallel and ordered by increasing RPM.
type SweepChartData struct {
	RPM      []float64
	Thrust   []float64 // N
	Torque   []float64 // N-m
	Velocity float64   // free-stream velocity the sweep was run at (m/s)
}

// DrawASCIISweepChart renders thrust and torque versus RPM as
// terminal line charts.
func DrawASCIISweepChart(data SweepChartData) string {
	var sb strings.Builder

	if len(data.RPM) < 2 {
		return "  (not enough sweep points to chart)\n"
	}

	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(data.Thrust,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Thrust (N) vs RPM %.0f..%.0f at V=%.1f m/s",
			data.RPM[0], data.RPM[len(data.RPM)-1], data.Velocity)),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(data.Torque,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("Torque (N-m) vs RPM %.0f..%.0f at V=%.1f m/s",
			data.RPM[0], data.RPM[len(data.RPM)-1], data.Velocity)),
	))
	sb.WriteString("\n")

	return sb.String()
}

// PlanformData holds blade geometry for the ASCII planform sketch.
// Slices are parallel and ordered by increasing radius.
type PlanformData struct {
	Radius []float64 // m
	Chord  []float64 // m
	Twist  []float64 // deg
	Tip    float64   // tip radius (m)
}

// DrawASCIIPlanform sketches the blade planform: one row per station,
// chord drawn as a centered bar, radius and twist annotated.
func DrawASCIIPlanform(data PlanformData) string {
	var sb strings.Builder

	maxChord := 0.0
	for _, c := range data.Chord {
		if c > maxChord {
			maxChord = c
		}
	}
	if maxChord <= 0 || len(data.Radius) == 0 {
		return "  (no blade sections to draw)\n"
	}

	const barChars = 40

	sb.WriteString("\n")
	sb.WriteString("  BLADE PLANFORM (hub at top, tip at bottom)\n")
	sb.WriteString("  r/R     chord                                          twist\n")

	for i := range data.Radius {
		frac := 0.0
		if data.Tip > 0 {
			frac = data.Radius[i] / data.Tip
		}
		w := int(data.Chord[i] / maxChord * barChars)
		if w < 1 {
			w = 1
		}
		pad := (barChars - w) / 2
		bar := strings.Repeat(" ", pad) + strings.Repeat("█", w)
		sb.WriteString(fmt.Sprintf("  %.3f  |%-*s|  %6.1f°\n", frac, barChars, bar, data.Twist[i]))
	}
	sb.WriteString("\n")

	return sb.String()
}
