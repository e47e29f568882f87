package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/internal/database"
	"github.com/gridcal/gridcal/internal/rest"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// The database is only needed when the persistent storage backend is
	// configured; the default in-memory backend runs without one.
	var db *sql.DB
	if cfg.Storage.Backend == "postgres" {
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(cfg.Database); err != nil {
			return nil, err
		}
	}

	r := mux.NewRouter()

	deps := BuildDependencies(context.Background(), db, cfg)

	SetupMiddleware(r)

	RegisterRoutes(r, deps)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
