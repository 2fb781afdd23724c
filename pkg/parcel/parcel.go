// Package parcel tracks the temperature of water parcels released at
// successive time steps and cooled by a shared cooling-rate series.
//
// Every parcel sees the same ambient cooling rate; parcels differ only in when
// they are released. A parcel starts at the initial water temperature on its
// release step, accumulates the hourly cooling from that step onward, and is
// floored at 0 °C. Before release a parcel has no history and reads exactly 0.
package parcel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/units"
)

// DefaultMaxParcels caps the number of tracked parcels.
const DefaultMaxParcels = 100

// FreezingC is the lower bound applied to every parcel temperature.
const FreezingC = 0

var (
	ErrEmptySeries = errors.New("empty cooling rate series")
	ErrOptions     = errors.New("invalid options")
)

// Options tune Evolve.
type Options struct {
	// MaxParcels is the most parcels to release, one per step from the first.
	// Zero means DefaultMaxParcels.
	MaxParcels int
}

func (o Options) maxParcels() (int, error) {
	switch {
	case o.MaxParcels < 0:
		return 0, fmt.Errorf("%w: MaxParcels %d is negative", ErrOptions, o.MaxParcels)
	case o.MaxParcels == 0:
		return DefaultMaxParcels, nil
	default:
		return o.MaxParcels, nil
	}
}

// Evolution holds one temperature trajectory per released parcel.
type Evolution struct {
	// PerHour is the cooling rate converted to °C per hour.
	PerHour []float64
	// Cumulative is the running sum of PerHour. A NaN step adds nothing to
	// the sum and is NaN itself.
	Cumulative []float64
	// Parcels[i][t] is the temperature at step t of the parcel released at
	// step i.
	Parcels [][]float64
}

// Evolve computes parcel trajectories from a per-minute cooling-rate series
// and the initial water temperature in °C. One parcel is released per step,
// up to min(opts.MaxParcels, len(ratePerMinute)).
func Evolve(ratePerMinute []float64, waterTempC float64, opts Options) (*Evolution, error) {
	if len(ratePerMinute) == 0 {
		return nil, ErrEmptySeries
	}
	limit, err := opts.maxParcels()
	if err != nil {
		return nil, err
	}

	n := len(ratePerMinute)
	perHour := units.PerHour(ratePerMinute)
	cumulative, carried := cumSum(perHour)

	k := min(limit, n)
	parcels := make([][]float64, k)
	for i := range parcels {
		// Cooling accumulated before the release step does not apply.
		var base float64
		if i > 0 {
			base = carried[i-1]
		}
		temps := make([]float64, n)
		for t := i; t < n; t++ {
			v := waterTempC + cumulative[t] - base
			if v < FreezingC {
				v = FreezingC
			}
			temps[t] = v
		}
		parcels[i] = temps
	}

	return &Evolution{
		PerHour:    perHour,
		Cumulative: cumulative,
		Parcels:    parcels,
	}, nil
}

// cumSum returns the running sum of values skipping NaN steps. cumulative is
// NaN wherever values is; carried holds the sum reached at every step.
func cumSum(values []float64) (cumulative, carried []float64) {
	finite := make([]float64, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			finite[i] = v
		}
	}
	carried = floats.CumSum(make([]float64, len(values)), finite)

	cumulative = make([]float64, len(values))
	copy(cumulative, carried)
	for i, v := range values {
		if math.IsNaN(v) {
			cumulative[i] = math.NaN()
		}
	}
	return cumulative, carried
}

// Steps is the length of every trajectory.
func (e *Evolution) Steps() int {
	return len(e.Cumulative)
}

// Table returns the trajectories in wide form: one column per parcel, named by
// its release step, one row per step.
func (e *Evolution) Table() *frame.Table {
	t := frame.NewSteps(e.Steps())
	for i, temps := range e.Parcels {
		// Names are unique and lengths match by construction.
		if err := t.Add(strconv.Itoa(i), temps); err != nil {
			panic(err)
		}
	}
	return t
}

// Records returns the trajectories in long form (step, parcel, temperature).
func (e *Evolution) Records() []frame.Record {
	return e.Table().Melt()
}
