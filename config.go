package main

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/coldregions/hffplots/pkg/handlers"
	"github.com/coldregions/hffplots/pkg/sunset"
	"github.com/coldregions/hffplots/pkg/visualize"
)

// envPrefix is prepended to every variable, e.g. HFF_DATA_DIR.
const envPrefix = "hff"

type Config struct {
	Port     string        `default:"8080"`
	Prefix   string        `default:"/"`
	DataDir  string        `default:"." split_words:"true"`
	Debug    bool          `default:"false"`
	CacheTTL time.Duration `default:"1h" split_words:"true"`
	// TimeZone applies to table timestamps that carry no zone.
	TimeZone string `default:"UTC" split_words:"true"`

	WaterTemp  float64 `default:"4" split_words:"true"`
	RateColumn string  `default:"cooling rate" split_words:"true"`
	MaxParcels int     `default:"100" split_words:"true"`

	MetTemperature string   `default:"Temperature (F)" split_words:"true"`
	MetWind        string   `default:"Surface Wind (mph)" split_words:"true"`
	MetExtra       []string `default:"Relative Humidity (%),Sky Cover (%)" split_words:"true"`

	// Night shading of meteorological charts is enabled by setting SiteTZ.
	SiteName string  `default:"site" split_words:"true"`
	SiteLat  float64 `split_words:"true"`
	SiteLong float64 `split_words:"true"`
	SiteTZ   string  `envconfig:"SITE_TZ"`
}

func loadConfig() (Config, error) {
	var env Config
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return Config{}, err
	}
	if env.MaxParcels < 0 {
		return Config{}, fmt.Errorf("MAX_PARCELS must not be negative, got %d", env.MaxParcels)
	}
	return env, nil
}

// handlerOptions resolves the time zones in env.
func (env Config) handlerOptions() (handlers.Options, error) {
	loc, err := time.LoadLocation(env.TimeZone)
	if err != nil {
		return handlers.Options{}, fmt.Errorf("unknown TIME_ZONE %q: %w", env.TimeZone, err)
	}

	opts := handlers.Options{
		DataDir:    env.DataDir,
		Location:   loc,
		CacheTTL:   env.CacheTTL,
		WaterTempC: env.WaterTemp,
		RateColumn: env.RateColumn,
		MaxParcels: env.MaxParcels,
		MetColumns: visualize.MetColumns{
			TemperatureF: env.MetTemperature,
			WindMPH:      env.MetWind,
			Extra:        env.MetExtra,
		},
	}
	if env.SiteTZ != "" {
		site, err := sunset.NewPlace(env.SiteName, env.SiteLat, env.SiteLong, env.SiteTZ)
		if err != nil {
			return handlers.Options{}, err
		}
		opts.Site = &site
	}
	return opts, nil
}
