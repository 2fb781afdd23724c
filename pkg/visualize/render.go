// Package visualize builds the heat flux, meteorological, cooling rate and
// parcel cooling charts and encodes them as PNG or SVG.
package visualize

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var ErrFormat = errors.New("unsupported format")

// ParseFormat reads a format name. The empty string means PNG.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", fmt.Errorf("%w %q", ErrFormat, s)
	}
}

// ContentType is the MIME type of images in format f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// An Encoder is a figure that can be written out as an image.
type Encoder interface {
	Encode(w io.Writer, f Format) error
}

var (
	_ Encoder = &Figure{}
	_ Encoder = &Panels{}
	_ Encoder = &LineChart{}
)

// Figure is a single plot and the size it is drawn at.
type Figure struct {
	Plot          *plot.Plot
	Width, Height vg.Length
}

func (fig *Figure) Encode(w io.Writer, f Format) error {
	c, err := newCanvas(fig.Width, fig.Height, f)
	if err != nil {
		return err
	}
	fig.Plot.Draw(draw.New(c))
	_, err = c.WriteTo(w)
	return err
}

func newCanvas(w, h vg.Length, f Format) (vg.CanvasWriterTo, error) {
	switch f {
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case SVG:
		return vgsvg.New(w, h), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrFormat, f)
	}
}
