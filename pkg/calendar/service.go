package calendar

import (
	"time"

	"github.com/gridcal/gridcal/internal/utils"
	"github.com/gridcal/gridcal/pkg/event"
)

// EventSource supplies the snapshot views are computed from. The event store
// satisfies it; views never mutate the collection.
type EventSource interface {
	Events() []event.Event
}

type Service struct {
	source EventSource
	clock  utils.Clock
}

func NewService(source EventSource, clock utils.Clock) *Service {
	return &Service{source: source, clock: clock}
}

// Month returns the month grid for the anchor date; a zero anchor means the
// current month.
func (s *Service) Month(anchor time.Time) []Cell {
	return MonthView(s.resolve(anchor), s.source.Events())
}

// Week returns the week cells for the anchor date; a zero anchor means the
// current week.
func (s *Service) Week(anchor time.Time) []Cell {
	return WeekView(s.resolve(anchor), s.source.Events())
}

// Day returns the sorted events of the given day; a zero date means today.
func (s *Service) Day(date time.Time) []event.Event {
	return DayList(s.resolve(date), s.source.Events())
}

func (s *Service) resolve(date time.Time) time.Time {
	if date.IsZero() {
		return s.clock.Now()
	}
	return date
}
