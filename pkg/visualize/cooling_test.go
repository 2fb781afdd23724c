package visualize

import (
	"bytes"
	"errors"
	"testing"

	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/parcel"
)

func coolingSeries(n int) frame.Series {
	values := make([]float64, n)
	for i := range values {
		values[i] = -0.001 * float64(i%7)
	}
	return frame.Series{Name: "cooling rate", Values: values}
}

func TestCoolingRate(t *testing.T) {
	fig, err := CoolingRate(coolingSeries(30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fig.Plot.Y.Label.Text; got != "Cooling Rate (C/min)" {
		t.Errorf("y label is %q", got)
	}
	if fig.Width != figureWidth || fig.Height != figureHeight {
		t.Errorf("got size %v x %v", fig.Width, fig.Height)
	}

	var png bytes.Buffer
	if err := fig.Encode(&png, PNG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png.Bytes(), pngSignature) {
		t.Errorf("output is not a PNG")
	}
}

func TestCoolingRateEmpty(t *testing.T) {
	if _, err := CoolingRate(frame.Series{}); !errors.Is(err, frame.ErrEmpty) {
		t.Errorf("got %v, wanted ErrEmpty", err)
	}
}

func TestParcelCooling(t *testing.T) {
	fig, err := ParcelCooling(coolingSeries(150), 4, parcel.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fig.Plot.Y.Label.Text; got != "Water Temp (C)" {
		t.Errorf("y label is %q", got)
	}
	if fig.Plot.Y.Min < 0 {
		t.Errorf("y axis reaches %v, below freezing", fig.Plot.Y.Min)
	}

	var svg bytes.Buffer
	if err := fig.Encode(&svg, SVG); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(svg.Bytes(), []byte("<svg")) {
		t.Errorf("output is not an SVG")
	}
}

func TestParcelCoolingSingleStep(t *testing.T) {
	if _, err := ParcelCooling(coolingSeries(1), 4, parcel.Options{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParcelCoolingEmpty(t *testing.T) {
	_, err := ParcelCooling(frame.Series{}, 4, parcel.Options{})
	if !errors.Is(err, parcel.ErrEmptySeries) {
		t.Errorf("got %v, wanted ErrEmptySeries", err)
	}
}
