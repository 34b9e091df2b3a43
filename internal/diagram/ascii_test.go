package diagram

import (
	"strings"
	"testing"
)

func TestDrawASCIISweepChart(t *testing.T) {
	data := SweepChartData{
		RPM:      []float64{1000, 2000, 3000, 4000},
		Thrust:   []float64{0.5, 2.1, 4.8, 8.6},
		Torque:   []float64{0.01, 0.05, 0.12, 0.21},
		Velocity: 10,
	}

	out := DrawASCIISweepChart(data)
	if !strings.Contains(out, "Thrust (N) vs RPM 1000..4000") {
		t.Errorf("chart missing thrust caption:\n%s", out)
	}
	if !strings.Contains(out, "Torque (N-m) vs RPM 1000..4000") {
		t.Errorf("chart missing torque caption:\n%s", out)
	}
}

func TestDrawASCIISweepChart_TooFewPoints(t *testing.T) {
	out := DrawASCIISweepChart(SweepChartData{RPM: []float64{1000}})
	if !strings.Contains(out, "not enough sweep points") {
		t.Errorf("single-point sweep should not chart, got:\n%s", out)
	}
}

func TestDrawASCIIPlanform(t *testing.T) {
	data := PlanformData{
		Radius: []float64{0.05, 0.15, 0.25},
		Chord:  []float64{0.05, 0.04, 0.03},
		Twist:  []float64{20, 12.5, 5},
		Tip:    0.25,
	}

	out := DrawASCIIPlanform(data)
	if !strings.Contains(out, "BLADE PLANFORM") {
		t.Errorf("planform header missing:\n%s", out)
	}
	// One row per station.
	if got := strings.Count(out, "°"); got != 3 {
		t.Errorf("planform has %d station rows, want 3:\n%s", got, out)
	}
	// The tip row is normalized to r/R = 1.
	if !strings.Contains(out, "1.000") {
		t.Errorf("tip station not normalized to r/R = 1:\n%s", out)
	}
}

func TestDrawASCIIPlanform_Empty(t *testing.T) {
	out := DrawASCIIPlanform(PlanformData{})
	if !strings.Contains(out, "no blade sections") {
		t.Errorf("empty planform should degrade gracefully, got:\n%s", out)
	}
}
