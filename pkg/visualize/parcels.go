package visualize

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/parcel"
)

// legendEntries bounds how many parcels are named in the legend.
const legendEntries = 6

// ParcelCooling runs the parcel cooling evolution for a per-minute cooling
// rate series and draws one line per parcel, colored by release step.
func ParcelCooling(rate frame.Series, waterTempC float64, opts parcel.Options) (*Figure, error) {
	evo, err := parcel.Evolve(rate.Values, waterTempC, opts)
	if err != nil {
		return nil, fmt.Errorf("parcel cooling: %w", err)
	}
	steps := frame.NewSteps(evo.Steps())
	names, groups := frame.Group(evo.Records())

	p := plot.New()
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Water Temp (C)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Legend.Top = true

	cmap := moreland.Kindlmann()
	cmap.SetMin(0)
	cmap.SetMax(1)
	every := max(1, len(names)/legendEntries)

	for i, name := range names {
		values := make([]float64, len(groups[name]))
		for j, r := range groups[name] {
			values[j] = r.Value
		}
		line, err := plotter.NewLine(points(steps, values))
		if err != nil {
			return nil, fmt.Errorf("parcel cooling: parcel %s: %w", name, err)
		}

		var frac float64
		if len(names) > 1 {
			frac = float64(i) / float64(len(names)-1)
		}
		c, err := cmap.At(frac)
		if err != nil {
			return nil, err
		}
		line.Color = c
		p.Add(line)
		if i%every == 0 {
			p.Legend.Add(name, line)
		}
	}

	return &Figure{Plot: p, Width: figureWidth, Height: figureHeight}, nil
}
