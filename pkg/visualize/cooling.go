package visualize

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/coldregions/hffplots/pkg/frame"
)

// ReferenceCoolingRate is the rate, in °C per minute, marked on cooling rate
// charts with a dashed line.
const ReferenceCoolingRate = -1.29e-3

const (
	figureWidth  = 15 * vg.Inch
	figureHeight = 5 * vg.Inch
)

// CoolingRate draws a water cooling rate series against the reference rate.
func CoolingRate(s frame.Series) (*Figure, error) {
	if len(s.Values) == 0 {
		return nil, fmt.Errorf("cooling rate: %w", frame.ErrEmpty)
	}
	t, err := s.Table()
	if err != nil {
		return nil, fmt.Errorf("cooling rate: %w", err)
	}

	p := plot.New()
	p.Y.Label.Text = "Cooling Rate (C/min)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	useTimeAxis(p, t)

	line, err := plotter.NewLine(points(t, s.Values))
	if err != nil {
		return nil, fmt.Errorf("cooling rate: %w", err)
	}
	line.Color = lineBlue
	line.Width = vg.Points(1.5)

	reference := plotter.NewFunction(func(float64) float64 { return ReferenceCoolingRate })
	reference.Color = black
	reference.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(line, reference)
	return &Figure{Plot: p, Width: figureWidth, Height: figureHeight}, nil
}
