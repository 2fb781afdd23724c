package parcel

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestEvolveConstantRate(t *testing.T) {
	evo, err := Evolve([]float64{-0.01, -0.01, -0.01}, 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]float64{-0.6, -0.6, -0.6}, evo.PerHour, approx); diff != "" {
		t.Errorf("wrong hourly rate (-want,+got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{-0.6, -1.2, -1.8}, evo.Cumulative, approx); diff != "" {
		t.Errorf("wrong cumulative sum (-want,+got):\n%s", diff)
	}

	want := [][]float64{
		{9.4, 8.8, 8.2},
		{0, 9.4, 8.8},
		{0, 0, 9.4},
	}
	if diff := cmp.Diff(want, evo.Parcels, approx); diff != "" {
		t.Errorf("wrong trajectories (-want,+got):\n%s", diff)
	}
}

func TestEvolveClampsAtFreezing(t *testing.T) {
	evo, err := Evolve([]float64{-0.5, -0.5, 0.1, -0.5}, 2, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Hourly: -30, -30, 6, -30. Parcel 2 starts at 2+6 = 8 then 8-30 < 0.
	want := [][]float64{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 0},
	}
	if diff := cmp.Diff(want, evo.Parcels, approx); diff != "" {
		t.Errorf("wrong trajectories (-want,+got):\n%s", diff)
	}
}

func TestEvolveNaN(t *testing.T) {
	nan := math.NaN()
	evo, err := Evolve([]float64{-0.01, nan, -0.01}, 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := cmp.Options{approx, cmpopts.EquateNaNs()}

	// A blank step adds nothing and the sum carries on past it.
	if diff := cmp.Diff([]float64{-0.6, nan, -1.2}, evo.Cumulative, opts); diff != "" {
		t.Errorf("wrong cumulative sum (-want,+got):\n%s", diff)
	}
	want := [][]float64{
		{9.4, nan, 8.8},
		{0, nan, 9.4},
		{0, 0, 9.4},
	}
	if diff := cmp.Diff(want, evo.Parcels, opts); diff != "" {
		t.Errorf("wrong trajectories (-want,+got):\n%s", diff)
	}
}

// sawtooth makes a rate series that both warms and cools so the clamp and the
// release offset are both exercised.
func sawtooth(n int) []float64 {
	rates := make([]float64, n)
	for i := range rates {
		rates[i] = 0.02*math.Sin(float64(i)/7) - 0.015
	}
	return rates
}

func TestEvolveInvariants(t *testing.T) {
	table := []struct {
		steps int
		temp  float64
		opts  Options
		want  int
	}{
		{steps: 1, temp: 0, want: 1},
		{steps: 3, temp: 10, want: 3},
		{steps: 99, temp: 4, want: 99},
		{steps: 100, temp: 4, want: 100},
		{steps: 250, temp: 4, want: 100},
		{steps: 250, temp: 4, opts: Options{MaxParcels: 20}, want: 20},
		{steps: 5, temp: 4, opts: Options{MaxParcels: 20}, want: 5},
	}

	for _, tc := range table {
		t.Run(fmt.Sprintf("%d steps max %d", tc.steps, tc.opts.MaxParcels), func(t *testing.T) {
			evo, err := Evolve(sawtooth(tc.steps), tc.temp, tc.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(evo.Parcels) != tc.want {
				t.Fatalf("got %d parcels, wanted %d", len(evo.Parcels), tc.want)
			}
			for i, temps := range evo.Parcels {
				if len(temps) != tc.steps {
					t.Fatalf("parcel %d has %d steps, wanted %d", i, len(temps), tc.steps)
				}
				for step, v := range temps {
					if v < 0 || math.IsNaN(v) {
						t.Errorf("parcel %d step %d is %v", i, step, v)
					}
					if step < i && v != 0 {
						t.Errorf("parcel %d has value %v before release at step %d", i, v, step)
					}
				}
			}
		})
	}
}

func TestEvolveIdempotent(t *testing.T) {
	rates := sawtooth(120)
	first, err := Evolve(rates, 3, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Evolve(rates, 3, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first.Records(), second.Records()); diff != "" {
		t.Errorf("repeated call differs (-first,+second):\n%s", diff)
	}
	if diff := cmp.Diff(sawtooth(120), rates); diff != "" {
		t.Errorf("input was modified (-want,+got):\n%s", diff)
	}
}

func TestEvolveErrors(t *testing.T) {
	if _, err := Evolve(nil, 4, Options{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("got %v, wanted ErrEmptySeries", err)
	}
	if _, err := Evolve([]float64{}, 4, Options{}); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("got %v, wanted ErrEmptySeries", err)
	}
	if _, err := Evolve([]float64{-0.01}, 4, Options{MaxParcels: -1}); !errors.Is(err, ErrOptions) {
		t.Errorf("got %v, wanted ErrOptions", err)
	}
}

func TestRecords(t *testing.T) {
	evo, err := Evolve([]float64{-0.01, -0.01}, 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := evo.Records()
	if len(got) != 4 {
		t.Fatalf("got %d records, wanted 4", len(got))
	}
	// Long form is grouped by parcel, then step.
	wantVars := []string{"0", "0", "1", "1"}
	wantSteps := []int{0, 1, 0, 1}
	for i, r := range got {
		if r.Variable != wantVars[i] || r.Step != wantSteps[i] {
			t.Errorf("record %d is (%s, %d), wanted (%s, %d)", i, r.Variable, r.Step, wantVars[i], wantSteps[i])
		}
	}
	if got[2].Value != 0 {
		t.Errorf("parcel 1 before release is %v, wanted 0", got[2].Value)
	}
}

func ExampleEvolve() {
	evo, _ := Evolve([]float64{-0.01, -0.01, -0.01}, 10, Options{})
	for i, temps := range evo.Parcels {
		fmt.Printf("parcel %d: %.1f\n", i, temps)
	}
	// Output:
	// parcel 0: [9.4 8.8 8.2]
	// parcel 1: [0.0 9.4 8.8]
	// parcel 2: [0.0 0.0 9.4]
}
