package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportSweepCurves exports thrust and torque versus RPM to an image
// file (png, svg or pdf by extension; png when unrecognized).
func ExportSweepCurves(data SweepChartData, filename string) error {
	p := plot.New()
	p.Title.Text = "Propeller Performance Sweep"
	p.X.Label.Text = "RPM"
	p.Y.Label.Text = "Thrust (N) / Torque (N-m)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	thrustLine, err := plotter.NewLine(xys(data.RPM, data.Thrust))
	if err != nil {
		return err
	}
	thrustLine.LineStyle.Width = vg.Points(2)
	thrustLine.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(thrustLine)
	p.Legend.Add("Thrust (N)", thrustLine)

	torqueLine, err := plotter.NewLine(xys(data.RPM, data.Torque))
	if err != nil {
		return err
	}
	torqueLine.LineStyle.Width = vg.Points(2)
	torqueLine.LineStyle.Color = color.RGBA{R: 220, G: 50, B: 32, A: 255}
	torqueLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(torqueLine)
	p.Legend.Add("Torque (N-m)", torqueLine)

	return save(p, filename)
}

// ExportBladeGeometry exports the chord and twist distributions along
// the blade to an image file.
func ExportBladeGeometry(data PlanformData, filename string) error {
	p := plot.New()
	p.Title.Text = "Blade Geometry"
	p.X.Label.Text = "Radius (m)"
	p.Y.Label.Text = "Chord (m) / Twist (deg)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	chordLine, err := plotter.NewLine(xys(data.Radius, data.Chord))
	if err != nil {
		return err
	}
	chordLine.LineStyle.Width = vg.Points(2)
	chordLine.LineStyle.Color = color.Black
	p.Add(chordLine)
	p.Legend.Add("Chord (m)", chordLine)

	twistLine, err := plotter.NewLine(xys(data.Radius, data.Twist))
	if err != nil {
		return err
	}
	twistLine.LineStyle.Width = vg.Points(2)
	twistLine.LineStyle.Color = color.RGBA{R: 220, G: 50, B: 32, A: 255}
	twistLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(twistLine)
	p.Legend.Add("Twist (deg)", twistLine)

	return save(p, filename)
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
