package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gridcal/gridcal/internal/event_bus"
	"github.com/gridcal/gridcal/pkg/storage"
	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = fmt.Errorf("event not found")

// DefaultColor is assigned to events created without a rendering color.
const DefaultColor = "#4F46E5"

// storedEvent is the persistence record: a JSON array of these lives under a
// single storage key. Only the canonical temporal pair is written.
type storedEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Color       string    `json:"color,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// Store owns the authoritative event collection. Every mutation runs
// normalize → validate before any state change; a failed validation leaves
// the collection untouched. The original host ran single-threaded, an HTTP
// server does not, so the collection is guarded by a RWMutex. Mutations
// replace the backing slice wholesale, so snapshots handed out earlier never
// observe a partial update.
type Store struct {
	mu           sync.RWMutex
	events       []Event
	storage      storage.Storage
	storageKey   string
	bus          *event_bus.EventBus
	defaultColor string
}

type StoreOption func(*Store)

// WithStorage attaches a persistence bridge: the collection is re-serialized
// under key after every successful mutation, and loaded from there on boot.
func WithStorage(st storage.Storage, key string) StoreOption {
	return func(s *Store) {
		s.storage = st
		s.storageKey = key
	}
}

// WithEventBus makes the store publish calendar.event.* notifications after
// successful mutations.
func WithEventBus(bus *event_bus.EventBus) StoreOption {
	return func(s *Store) {
		s.bus = bus
	}
}

// WithDefaultColor overrides the color assigned to events created without one.
func WithDefaultColor(color string) StoreOption {
	return func(s *Store) {
		s.defaultColor = color
	}
}

// NewStore builds a store seeded with the initial collection. When a
// persistence bridge is configured, a previously persisted collection takes
// precedence; a missing or unparseable value falls back to initial.
func NewStore(ctx context.Context, initial []Event, opts ...StoreOption) *Store {
	s := &Store{defaultColor: DefaultColor}
	for _, opt := range opts {
		opt(s)
	}

	events := make([]Event, 0, len(initial))
	for _, e := range initial {
		events = append(events, Normalize(e))
	}

	if s.storage != nil {
		if persisted, ok := s.load(ctx); ok {
			events = persisted
		}
	}
	s.events = events

	return s
}

// Add normalizes and validates the event, then appends it. An empty id gets
// a generated uuid, an empty color the default. On validation failure the
// collection is unchanged and the error is returned to the caller.
func (s *Store) Add(ctx context.Context, e Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e = Normalize(e)
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Color == "" {
		e.Color = s.defaultColor
	}
	if err := Validate(e); err != nil {
		return Event{}, err
	}

	next := make([]Event, 0, len(s.events)+1)
	next = append(next, s.events...)
	next = append(next, e)
	s.events = next

	s.persist(ctx)
	s.publish(ctx, event_bus.CalendarEventCreatedType, event_bus.CalendarEventCreated{
		ID:        e.ID,
		Title:     e.Title,
		StartDate: e.StartDate,
		EndDate:   e.EndDate,
		Category:  e.Category,
	})
	return e, nil
}

// Update merges the incoming event onto the first record matching id. The
// merge is shallow: title and the temporal pair always come from the
// normalized update, while description, color, and category keep their stored
// value when the update leaves them empty. The merged result is re-validated
// before it replaces the stored record.
func (s *Store) Update(ctx context.Context, id string, e Event) (Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, ErrEventNotFound
	}

	incoming := Normalize(e)
	merged := s.events[idx]
	merged.Title = incoming.Title
	merged.StartDate = incoming.StartDate
	merged.EndDate = incoming.EndDate
	if incoming.Description != "" {
		merged.Description = incoming.Description
	}
	if incoming.Color != "" {
		merged.Color = incoming.Color
	}
	if incoming.Category != "" {
		merged.Category = incoming.Category
	}

	if err := Validate(merged); err != nil {
		return Event{}, err
	}

	next := make([]Event, len(s.events))
	copy(next, s.events)
	next[idx] = merged
	s.events = next

	s.persist(ctx)
	s.publish(ctx, event_bus.CalendarEventUpdatedType, event_bus.CalendarEventUpdated{
		ID:        merged.ID,
		Title:     merged.Title,
		StartDate: merged.StartDate,
		EndDate:   merged.EndDate,
		Category:  merged.Category,
	})
	return merged, nil
}

// Delete removes the first event matching id. Deleting an unknown id is a
// no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := make([]Event, 0, len(s.events)-1)
	next = append(next, s.events[:idx]...)
	next = append(next, s.events[idx+1:]...)
	s.events = next

	s.persist(ctx)
	s.publish(ctx, event_bus.CalendarEventDeletedType, event_bus.CalendarEventDeleted{ID: id})
	return nil
}

// Events returns a snapshot copy of the collection. Callers render from the
// copy; they never mutate store state directly.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]Event, len(s.events))
	copy(snapshot, s.events)
	return snapshot
}

// indexOf returns the position of the first event with the given id, or -1.
// A stable left-to-right scan keeps behavior deterministic if duplicate ids
// ever get seeded.
func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist serializes the whole collection to the storage bridge. Write
// failures are logged and swallowed: the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	serialized, err := encodeEvents(s.events)
	if err != nil {
		log.Warnf("failed to serialize event collection: %v", err)
		return
	}
	if err := s.storage.Set(ctx, s.storageKey, serialized); err != nil {
		log.Warnf("failed to persist event collection: %v", err)
	}
}

// load reads the persisted collection. Absent, unreadable, or corrupt values
// all surface as (nil, false) so boot falls back to the initial collection.
func (s *Store) load(ctx context.Context) ([]Event, bool) {
	raw, found, err := s.storage.Get(ctx, s.storageKey)
	if err != nil {
		log.Warnf("failed to read persisted events, using initial collection: %v", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	events, err := decodeEvents(raw)
	if err != nil {
		log.Warnf("persisted events are corrupt, using initial collection: %v", err)
		return nil, false
	}
	return events, true
}

func (s *Store) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Errorf("failed to publish %s: %v", eventType, err)
	}
}

func encodeEvents(events []Event) (string, error) {
	records := make([]storedEvent, 0, len(events))
	for _, e := range events {
		records = append(records, storedEvent{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Color:       e.Color,
			Category:    e.Category,
		})
	}
	serialized, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(serialized), nil
}

func decodeEvents(raw string) ([]Event, error) {
	var records []storedEvent
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(records))
	for _, r := range records {
		events = append(events, Normalize(Event{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			StartDate:   r.StartDate,
			EndDate:     r.EndDate,
			Color:       r.Color,
			Category:    r.Category,
		}))
	}
	return events, nil
}
