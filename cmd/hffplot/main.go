// Command hffplot draws one chart from a CSV table and writes the image to
// standard output.
//
//	hffplot -kind heatflux -o svg fluxes.csv > fluxes.svg
//	hffplot -kind parcels -temp 3.5 cooling.csv > parcels.png
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/log"
	"github.com/coldregions/hffplots/pkg/parcel"
	"github.com/coldregions/hffplots/pkg/visualize"
)

var errUsage = errors.New("usage: hffplot [flags] table.csv")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err != nil {
		log.Errorw("Failed to draw chart", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("hffplot", flag.ContinueOnError)
	kind := fs.String("kind", "heatflux", "chart kind: heatflux, met, coolingrate or parcels")
	format := fs.String("o", "png", "output format: png or svg")
	column := fs.String("column", "cooling rate", "cooling rate column for coolingrate and parcels")
	temp := fs.Float64("temp", 4, "initial water temperature in C for parcels")
	maxParcels := fs.Int("max-parcels", parcel.DefaultMaxParcels, "most parcels to release")
	tz := fs.String("tz", "UTC", "time zone of timestamps without one")
	extra := fs.String("met-extra", strings.Join(visualize.DefaultMetColumns.Extra, ","), "comma separated met columns plotted as they are")
	debug := fs.Bool("debug", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := log.Init(*debug); err != nil {
		return err
	}
	defer log.Sync()

	if fs.NArg() != 1 {
		return errUsage
	}

	f, err := visualize.ParseFormat(*format)
	if err != nil {
		return err
	}
	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return err
	}

	in, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer in.Close()
	t, err := frame.ReadCSV(in, loc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", fs.Arg(0), err)
	}
	log.Debugf("read %d rows with columns %q", t.Len(), t.Names())

	var fig visualize.Encoder
	switch *kind {
	case "heatflux":
		fig, err = visualize.HeatFluxes(t)
	case "met":
		cols := visualize.DefaultMetColumns
		cols.Extra = nil
		if *extra != "" {
			cols.Extra = strings.Split(*extra, ",")
		}
		fig, err = visualize.Met(t, cols, visualize.MetOptions{})
	case "coolingrate", "parcels":
		var s frame.Series
		s, err = t.Series(*column)
		if err != nil {
			break
		}
		if *kind == "coolingrate" {
			fig, err = visualize.CoolingRate(s)
		} else {
			fig, err = visualize.ParcelCooling(s, *temp, parcel.Options{MaxParcels: *maxParcels})
		}
	default:
		err = fmt.Errorf("unknown chart kind %q", *kind)
	}
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	if err := fig.Encode(w, f); err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	return w.Flush()
}
