package visualize

import (
	"image/color"
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/coldregions/hffplots/pkg/frame"
)

// Named colors, matching the CSS names the charts were designed with.
var (
	black     = color.RGBA{A: 0xff}
	blue      = color.RGBA{B: 0xff, A: 0xff}
	orange    = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	green     = color.RGBA{G: 0x80, A: 0xff}
	red       = color.RGBA{R: 0xff, A: 0xff}
	lightGray = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	lineBlue  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	nightBlue = color.RGBA{B: 0xff, A: 0x40}
)

const timeTickFormat = "Jan 02\n15:04"

func addGrid(p *plot.Plot) {
	g := plotter.NewGrid()
	g.Vertical.Color = lightGray
	g.Horizontal.Color = lightGray
	p.Add(g)
}

// useTimeAxis labels the x axis with dates for time-indexed tables.
func useTimeAxis(p *plot.Plot, t *frame.Table) {
	if !t.TimeIndexed() {
		return
	}
	loc := time.UTC
	if len(t.Times) > 0 {
		loc = t.Times[0].Location()
	}
	p.X.Tick.Marker = plot.TimeTicks{
		Format: timeTickFormat,
		Time: func(x float64) time.Time {
			return time.Unix(int64(x), 0).In(loc)
		},
	}
}

// points pairs a column with the table's x coordinates. NaN cells are left
// out along with infinities, which plotter.NewLine rejects.
func points(t *frame.Table, values []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: t.X(i), Y: v})
	}
	return pts
}
