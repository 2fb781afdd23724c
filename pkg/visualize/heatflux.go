package visualize

import (
	"fmt"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/coldregions/hffplots/pkg/frame"
)

const (
	// NetFlux is the column drawn as the bold black total.
	NetFlux = "net flux"

	// FluxLegendTitle heads the legend.
	FluxLegendTitle = "Flux Type"

	// FluxOpacity is applied to every flux other than NetFlux.
	FluxOpacity = 0.8

	chartWidth  = 1200
	chartHeight = 500
)

// fluxColors fixes the color of each known heat budget component. Other
// columns take the chart's default palette.
var fluxColors = map[string]drawing.Color{
	"downwelling SW": {B: 255, A: 255},
	"downwelling LW": {R: 255, G: 165, A: 255},
	"upwelling LW":   {G: 128, A: 255},
	"sensible heat":  {R: 255, A: 255},
	"latent heat":    {R: 128, B: 128, A: 255},
	NetFlux:          {A: 255},
}

var gridStyle = chart.Style{
	StrokeColor: drawing.Color{R: 0xd3, G: 0xd3, B: 0xd3, A: 255},
	StrokeWidth: 1,
}

// LineChart is a go-chart line chart.
type LineChart struct {
	chart.Chart
}

func (c *LineChart) Encode(w io.Writer, f Format) error {
	switch f {
	case PNG:
		return c.Render(chart.PNG, w)
	case SVG:
		return c.Render(chart.SVG, w)
	default:
		return fmt.Errorf("%w %q", ErrFormat, f)
	}
}

// HeatFluxes draws one line per heat flux column of t, with the NetFlux
// column bold and black and every other flux thinner and translucent.
func HeatFluxes(t *frame.Table) (*LineChart, error) {
	if t.Len() == 0 || len(t.Columns()) == 0 {
		return nil, fmt.Errorf("heat fluxes: %w", frame.ErrEmpty)
	}

	series := make([]chart.Series, 0, len(t.Columns()))
	for i, c := range t.Columns() {
		style := fluxStyle(c.Name, i)
		xs, ys := finite(c.Values)
		if len(ys) == 0 {
			continue
		}
		if t.TimeIndexed() {
			times := make([]time.Time, len(xs))
			for j, x := range xs {
				times[j] = t.Times[x]
			}
			series = append(series, chart.TimeSeries{
				Name:    c.Name,
				XValues: times,
				YValues: ys,
				Style:   style,
			})
		} else {
			steps := make([]float64, len(xs))
			for j, x := range xs {
				steps[j] = float64(x)
			}
			series = append(series, chart.ContinuousSeries{
				Name:    c.Name,
				XValues: steps,
				YValues: ys,
				Style:   style,
			})
		}
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("heat fluxes: no values: %w", frame.ErrEmpty)
	}

	lc := &LineChart{Chart: chart.Chart{
		Title:      "Forecast Heat Fluxes",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Heat Flux (W/m²)",
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}}
	lc.Elements = []chart.Renderable{
		chart.Legend(&lc.Chart),
		legendTitle(FluxLegendTitle),
	}
	return lc, nil
}

func fluxStyle(name string, index int) chart.Style {
	if name == NetFlux {
		return chart.Style{
			StrokeColor: fluxColors[NetFlux],
			StrokeWidth: 3,
		}
	}
	col, ok := fluxColors[name]
	if !ok {
		col = chart.GetDefaultColor(index)
	}
	col.A = uint8(math.Round(FluxOpacity * 255))
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
}

// finite returns the row numbers and values of the cells that can be drawn.
// Blank cells are skipped.
func finite(values []float64) (rows []int, ys []float64) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rows = append(rows, i)
		ys = append(ys, v)
	}
	return rows, ys
}

// legendTitle writes title just above the legend chart.Legend draws in the
// top left of the canvas.
func legendTitle(title string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
		chart.Style{
			Font:      defaults.Font,
			FontSize:  10,
			FontColor: drawing.ColorBlack,
		}.WriteToRenderer(r)
		r.Text(title, cb.Left+5, cb.Top-6)
	}
}
