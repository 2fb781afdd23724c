package units

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFahrenheitToCelsius(t *testing.T) {
	table := []struct {
		f, want float64
	}{
		{32, 0},
		{212, 100},
		{-40, -40},
		{50, 10},
	}

	for _, tc := range table {
		t.Run(fmt.Sprint(tc.f), func(t *testing.T) {
			if got := FahrenheitToCelsius(tc.f); got != tc.want {
				t.Errorf("got %v, wanted %v", got, tc.want)
			}
		})
	}
}

func TestMPHToMetersPerSecond(t *testing.T) {
	if got := MPHToMetersPerSecond(1); got != 0.44704 {
		t.Errorf("got %v, wanted 0.44704", got)
	}
	if got := MPHToMetersPerSecond(0); got != 0 {
		t.Errorf("got %v, wanted 0", got)
	}
}

func TestSliceHelpers(t *testing.T) {
	in := []float64{32, 212}
	if diff := cmp.Diff([]float64{0, 100}, Fahrenheit(in)); diff != "" {
		t.Errorf("Fahrenheit (-want,+got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{32, 212}, in); diff != "" {
		t.Errorf("input was modified (-want,+got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.44704, 0}, MPH([]float64{1, 0})); diff != "" {
		t.Errorf("MPH (-want,+got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{60, -30}, PerHour([]float64{1, -0.5})); diff != "" {
		t.Errorf("PerHour (-want,+got):\n%s", diff)
	}
}

func ExamplePerMinuteToPerHour() {
	fmt.Printf("%.2f\n", PerMinuteToPerHour(-0.01))
	// Output:
	// -0.60
}
