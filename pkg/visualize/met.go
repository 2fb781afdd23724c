package visualize

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/sunset"
	"github.com/coldregions/hffplots/pkg/units"
)

// Names of the derived meteorological variables.
const (
	TemperatureC = "Temperature C"
	WindSpeedMS  = "windspeed ms"
)

// Sizes are in points.
const (
	metTitle       = "Meteorological Data"
	metWidth       = 700
	metPanelHeight = 300
	metTitleHeight = 36
)

// metColors are used for the panels in order, wrapping around.
var metColors = []color.Color{blue, orange, green, red}

// MetColumns names the input columns of a meteorological table.
type MetColumns struct {
	// TemperatureF is air temperature in °F, plotted in °C.
	TemperatureF string
	// WindMPH is wind speed in mph, plotted in m/s.
	WindMPH string
	// Extra columns are plotted as they are.
	Extra []string
}

// DefaultMetColumns matches the hourly point forecast tables the charts were
// first built for.
var DefaultMetColumns = MetColumns{
	TemperatureF: "Temperature (F)",
	WindMPH:      "Surface Wind (mph)",
	Extra:        []string{"Relative Humidity (%)", "Sky Cover (%)"},
}

// MetOptions adjust Met.
type MetOptions struct {
	// Site, when set, shades the night hours of time-indexed tables.
	Site *sunset.Place
}

// MetTable selects the named columns of t and converts them to metric. The
// result holds the Extra columns in order, then TemperatureC, then
// WindSpeedMS.
func MetTable(t *frame.Table, cols MetColumns) (*frame.Table, error) {
	temp, err := t.Column(cols.TemperatureF)
	if err != nil {
		return nil, err
	}
	wind, err := t.Column(cols.WindMPH)
	if err != nil {
		return nil, err
	}

	var out *frame.Table
	if t.TimeIndexed() {
		out = frame.New(t.Times)
	} else {
		out = frame.NewSteps(t.Len())
	}
	for _, name := range cols.Extra {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if err := out.Add(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	if err := out.Add(TemperatureC, units.Fahrenheit(temp.Values)); err != nil {
		return nil, err
	}
	if err := out.Add(WindSpeedMS, units.MPH(wind.Values)); err != nil {
		return nil, err
	}
	return out, nil
}

// Panels is a column of plots sharing an x axis, drawn under one title.
type Panels struct {
	Title string
	// Names holds the variable shown in each panel, top to bottom.
	Names []string
	Plots []*plot.Plot
	// Data is the converted table the panels were drawn from.
	Data *frame.Table

	Width, PanelHeight vg.Length
	// Border frames the data area of each panel. A zero width draws none.
	Border draw.LineStyle
}

// Met draws one panel per meteorological variable of t, converting
// temperature to °C and wind speed to m/s. A panel for TemperatureC carries a
// horizontal line at freezing.
func Met(t *frame.Table, cols MetColumns, opts MetOptions) (*Panels, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("met: %w", frame.ErrEmpty)
	}
	data, err := MetTable(t, cols)
	if err != nil {
		return nil, fmt.Errorf("met: %w", err)
	}

	var nightSpans [][2]float64
	if opts.Site != nil && data.TimeIndexed() {
		nightSpans = nights(data.Times, *opts.Site)
	}

	names, groups := frame.Group(data.Melt())
	panels := &Panels{
		Title:       metTitle,
		Names:       names,
		Data:        data,
		Width:       metWidth,
		PanelHeight: metPanelHeight,
		Border:      draw.LineStyle{Color: black, Width: vg.Points(1)},
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	for i, name := range names {
		values := make([]float64, len(groups[name]))
		for j, r := range groups[name] {
			values[j] = r.Value
		}
		pts := points(data, values)
		if len(pts) == 0 {
			return nil, fmt.Errorf("met: no values in %q", name)
		}

		p := plot.New()
		p.Title.Text = name
		p.Title.TextStyle.Color = black
		useTimeAxis(p, data)
		addGrid(p)

		ymin, ymax := yRange(pts)
		for _, span := range nightSpans {
			shade, err := plotter.NewPolygon(plotter.XYs{
				{X: span[0], Y: ymin}, {X: span[1], Y: ymin},
				{X: span[1], Y: ymax}, {X: span[0], Y: ymax},
			})
			if err != nil {
				return nil, err
			}
			shade.Color = nightBlue
			shade.LineStyle.Width = 0
			p.Add(shade)
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("met: %q: %w", name, err)
		}
		line.Color = metColors[i%len(metColors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(name, line)
		p.Legend.Top = true

		if name == TemperatureC {
			freezing := plotter.NewFunction(func(float64) float64 { return 0 })
			freezing.Color = black
			p.Add(freezing)
		}

		xmin = math.Min(xmin, pts[0].X)
		xmax = math.Max(xmax, pts[len(pts)-1].X)
		panels.Plots = append(panels.Plots, p)
	}

	// Share the x axis between panels.
	for _, p := range panels.Plots {
		p.X.Min, p.X.Max = xmin, xmax
	}
	panels.Plots[len(panels.Plots)-1].X.Label.Text = "Date"
	return panels, nil
}

func (p *Panels) Encode(w io.Writer, f Format) error {
	height := p.PanelHeight*vg.Length(len(p.Plots)) + metTitleHeight
	c, err := newCanvas(p.Width, height, f)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	if len(p.Plots) > 0 {
		sty := p.Plots[0].Title.TextStyle
		sty.Font.Size = vg.Points(16)
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(6)}, p.Title)
	}

	grid := make([][]*plot.Plot, len(p.Plots))
	for i, pl := range p.Plots {
		grid[i] = []*plot.Plot{pl}
	}
	tiles := draw.Tiles{
		Rows: len(p.Plots),
		Cols: 1,
		PadY: vg.Points(12),
		PadX: vg.Points(8),
	}
	body := draw.Crop(dc, 0, 0, 0, -metTitleHeight)
	canvases := plot.Align(grid, tiles, body)
	for i := range grid {
		grid[i][0].Draw(canvases[i][0])
		if p.Border.Width > 0 {
			area := grid[i][0].DataCanvas(canvases[i][0])
			area.StrokeLines(p.Border, []vg.Point{
				{X: area.Min.X, Y: area.Min.Y},
				{X: area.Max.X, Y: area.Min.Y},
				{X: area.Max.X, Y: area.Max.Y},
				{X: area.Min.X, Y: area.Max.Y},
				{X: area.Min.X, Y: area.Min.Y},
			})
		}
	}

	_, err = c.WriteTo(w)
	return err
}

func yRange(pts plotter.XYs) (ymin, ymax float64) {
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		ys[i] = pt.Y
	}
	ymin, ymax = floats.Min(ys), floats.Max(ys)
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	return ymin, ymax
}

// nights returns the dark spans within times as x ranges.
func nights(times []time.Time, site sunset.Place) [][2]float64 {
	start, end := times[0], times[len(times)-1]
	x := func(t time.Time) float64 { return float64(t.Unix()) }

	var result [][2]float64
	cursor := start
	for _, d := range sunset.Daylight(start, end, site) {
		if cursor.Before(end) && d.Sunrise.After(cursor) {
			to := d.Sunrise
			if to.After(end) {
				to = end
			}
			result = append(result, [2]float64{x(cursor), x(to)})
		}
		if d.Sunset.After(cursor) {
			cursor = d.Sunset
		}
	}
	if cursor.Before(end) {
		result = append(result, [2]float64{x(cursor), x(end)})
	}
	return result
}
