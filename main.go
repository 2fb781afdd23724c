package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/coldregions/hffplots/pkg/handlers"
	"github.com/coldregions/hffplots/pkg/log"
	"github.com/coldregions/hffplots/pkg/metrics"
)

func main() {
	if err := log.Init(false); err != nil {
		panic(err)
	}
	defer log.Sync()

	env, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if env.Debug {
		if err := log.Init(true); err != nil {
			log.Fatalf("%v", err)
		}
	}
	opts, err := env.handlerOptions()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	r := mux.NewRouter().StrictSlash(true)
	r.Use(metrics.LatencyHandler)
	s := r.PathPrefix(env.Prefix).Subrouter()
	handlers.Register(s, opts)

	srv := &http.Server{
		Handler:      r,
		Addr:         "0.0.0.0:" + env.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Infow("Listening and serving", "addr", srv.Addr, "prefix", env.Prefix, "data_dir", env.DataDir)
	log.Fatalf("%v", srv.ListenAndServe())
}
