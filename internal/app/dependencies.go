package app

import (
	"context"
	"database/sql"

	"github.com/gridcal/gridcal/internal/config"
	"github.com/gridcal/gridcal/internal/event_bus"
	"github.com/gridcal/gridcal/internal/utils"
	"github.com/gridcal/gridcal/pkg/calendar"
	"github.com/gridcal/gridcal/pkg/event"
	"github.com/gridcal/gridcal/pkg/ics"
	"github.com/gridcal/gridcal/pkg/storage"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	Storage      storage.Storage
	EventStore   *event.Store
	EventHandler *event.Handler

	CalendarService *calendar.Service
	CalendarHandler *calendar.Handler

	IcsHandler *ics.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
// db may be nil when the in-memory storage backend is configured.
func BuildDependencies(ctx context.Context, db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	if cfg.Storage.Backend == "postgres" {
		deps.Storage = storage.NewSQLStorage(db)
	} else {
		deps.Storage = storage.NewMemoryStorage()
	}

	deps.EventStore = event.NewStore(ctx, nil,
		event.WithStorage(deps.Storage, cfg.Storage.Key),
		event.WithEventBus(deps.EventBus),
		event.WithDefaultColor(cfg.DefaultColor),
	)
	deps.EventHandler = event.NewHandler(deps.EventStore)

	deps.CalendarService = calendar.NewService(deps.EventStore, deps.Clock)
	deps.CalendarHandler = calendar.NewHandler(deps.CalendarService)

	deps.IcsHandler = ics.NewHandler(deps.EventStore)

	return deps
}
