package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/coldregions/hffplots/pkg/cache"
	"github.com/coldregions/hffplots/pkg/frame"
	"github.com/coldregions/hffplots/pkg/log"
	"github.com/coldregions/hffplots/pkg/metrics"
	"github.com/coldregions/hffplots/pkg/parcel"
	"github.com/coldregions/hffplots/pkg/sunset"
	"github.com/coldregions/hffplots/pkg/visualize"

	"github.com/gorilla/mux"
)

var (
	errBadRequest = errors.New("bad request")
	errNotFound   = errors.New("not found")
)

// Options configure the chart handlers.
type Options struct {
	// DataDir holds the CSV tables charts are drawn from.
	DataDir string
	// Location is used for index timestamps without a zone.
	Location *time.Location
	CacheTTL time.Duration

	// WaterTempC is the initial parcel temperature when a request gives none.
	WaterTempC float64
	// RateColumn names the per-minute cooling rate column.
	RateColumn string
	MaxParcels int

	MetColumns visualize.MetColumns
	Site       *sunset.Place
}

// A builder turns a table into a figure for one chart kind.
type builder func(o *Options, t *frame.Table, r *http.Request) (visualize.Encoder, error)

var builders = map[string]builder{
	"heatflux": func(o *Options, t *frame.Table, r *http.Request) (visualize.Encoder, error) {
		return visualize.HeatFluxes(t)
	},
	"met": func(o *Options, t *frame.Table, r *http.Request) (visualize.Encoder, error) {
		return visualize.Met(t, o.MetColumns, visualize.MetOptions{Site: o.Site})
	},
	"coolingrate": func(o *Options, t *frame.Table, r *http.Request) (visualize.Encoder, error) {
		s, err := t.Series(o.rateColumn(r))
		if err != nil {
			return nil, err
		}
		return visualize.CoolingRate(s)
	},
	"parcels": func(o *Options, t *frame.Table, r *http.Request) (visualize.Encoder, error) {
		s, err := t.Series(o.rateColumn(r))
		if err != nil {
			return nil, err
		}
		temp, err := o.waterTemp(r)
		if err != nil {
			return nil, err
		}
		return visualize.ParcelCooling(s, temp, parcel.Options{MaxParcels: o.MaxParcels})
	},
}

// Kinds lists the chart kinds that can be requested.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func Register(r *mux.Router, opts Options) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	o := &opts

	r.Handle("/", makeIndexHandler())
	r.Handle("/api/v1/charts/{kind}", makeChartHandler(o)).Methods(http.MethodGet)
	r.Handle("/api/v1/parcels", makeParcelsHandler(o)).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler())
}

func makeIndexHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		for _, k := range Kinds() {
			fmt.Fprintf(w, "/api/v1/charts/%s?file=<table.csv>&o=png|svg\n", k)
		}
		fmt.Fprintf(w, "/api/v1/parcels?file=<table.csv>&temp=<C>\n")
	})
}

func makeChartHandler(o *Options) http.Handler {
	renderCache := cache.NewTimed(o.CacheTTL)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := mux.Vars(r)["kind"]
		build, ok := builders[kind]
		if !ok {
			writeError(w, fmt.Errorf("%w: unknown chart kind %q", errNotFound, kind))
			return
		}
		format, err := visualize.ParseFormat(r.FormValue("o"))
		if err != nil {
			writeError(w, err)
			return
		}

		// cache based on method and URL, which should encapsulate the query
		key := fmt.Sprintf("%s %s", r.Method, r.URL)
		if cached, ok := renderCache.Get(key); ok {
			metrics.CacheHit()
			w.Header().Add("Content-Type", format.ContentType())
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		metrics.CacheMiss()

		start := time.Now()
		var buf bytes.Buffer
		err = func() error {
			t, err := o.loadTable(r.FormValue("file"))
			if err != nil {
				return err
			}
			fig, err := build(o, t, r)
			if err != nil {
				return err
			}
			return fig.Encode(&buf, format)
		}()
		if err != nil {
			metrics.RenderError(kind)
			log.Errorw("Failed to render chart", "kind", kind, "url", r.URL.String(), "error", err)
			writeError(w, err)
			return
		}
		metrics.ObserveRender(kind, string(format), time.Since(start))

		renderCache.Set(key, buf.Bytes())
		w.Header().Add("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}

// parcelsResponse is the long-form parcel evolution.
type parcelsResponse struct {
	WaterTempC float64        `json:"water_temp_c"`
	Parcels    int            `json:"parcels"`
	Steps      int            `json:"steps"`
	Records    []frame.Record `json:"records"`
}

func makeParcelsHandler(o *Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := func() (*parcelsResponse, error) {
			t, err := o.loadTable(r.FormValue("file"))
			if err != nil {
				return nil, err
			}
			s, err := t.Series(o.rateColumn(r))
			if err != nil {
				return nil, err
			}
			temp, err := o.waterTemp(r)
			if err != nil {
				return nil, err
			}
			evo, err := parcel.Evolve(s.Values, temp, parcel.Options{MaxParcels: o.MaxParcels})
			if err != nil {
				return nil, err
			}
			return &parcelsResponse{
				WaterTempC: temp,
				Parcels:    len(evo.Parcels),
				Steps:      evo.Steps(),
				Records:    evo.Records(),
			}, nil
		}()
		if err != nil {
			log.Errorw("Failed to evolve parcels", "url", r.URL.String(), "error", err)
			writeError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(resp); err != nil {
			log.Errorw("Failed to encode JSON result", "url", r.URL.String(), "error", err)
			writeError(w, err)
			return
		}
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	})
}

// loadTable reads a CSV table from the data directory. Only bare file names
// are accepted.
func (o *Options) loadTable(name string) (*frame.Table, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing file parameter", errBadRequest)
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: invalid file name %q", errBadRequest, name)
	}

	f, err := os.Open(filepath.Join(o.DataDir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: no table %q", errNotFound, name)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := frame.ReadCSV(f, o.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: table %q: %w", errBadRequest, name, err)
	}
	return t, nil
}

func (o *Options) rateColumn(r *http.Request) string {
	if c := r.FormValue("column"); c != "" {
		return c
	}
	return o.RateColumn
}

func (o *Options) waterTemp(r *http.Request) (float64, error) {
	s := r.FormValue("temp")
	if s == "" {
		return o.WaterTempC, nil
	}
	temp, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: temp %q is not a number", errBadRequest, s)
	}
	return temp, nil
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, frame.ErrMissingColumn),
		errors.Is(err, frame.ErrEmpty),
		errors.Is(err, parcel.ErrEmptySeries),
		errors.Is(err, parcel.ErrOptions),
		errors.Is(err, visualize.ErrFormat):
		code = http.StatusBadRequest
	}
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(code)
	fmt.Fprintf(w, "Failed to get chart: %v", err)
}
