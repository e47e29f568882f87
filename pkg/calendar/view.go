package calendar

import (
	"time"

	"github.com/gridcal/gridcal/pkg/dateutil"
	"github.com/gridcal/gridcal/pkg/event"
)

// Cell is one day of a rendered view: the date, whether it belongs to the
// anchor month (month grids include leading/trailing days of adjacent
// months), and the day's events sorted by start. Cells are derived values,
// recomputed from the anchor on every request and never stored.
type Cell struct {
	Date    time.Time
	InMonth bool
	Events  []event.Event
}

// Conflict is a pair of events flagged by the strict overlap test.
type Conflict struct {
	A event.Event
	B event.Event
}

// MonthView computes the 42-cell month grid for the anchor date and buckets
// events into their days.
func MonthView(anchor time.Time, events []event.Event) []Cell {
	grid := dateutil.MonthGrid(anchor)
	cells := make([]Cell, 0, len(grid))
	for _, day := range grid {
		cells = append(cells, Cell{
			Date:    day,
			InMonth: day.Month() == anchor.Month() && day.Year() == anchor.Year(),
			Events:  event.SortByStart(event.OnDay(events, day)),
		})
	}
	return cells
}

// WeekView computes the 7 days of the anchor's week, Sunday first.
func WeekView(anchor time.Time, events []event.Event) []Cell {
	days := dateutil.WeekDays(anchor)
	cells := make([]Cell, 0, len(days))
	for _, day := range days {
		cells = append(cells, Cell{
			Date:    day,
			InMonth: true,
			Events:  event.SortByStart(event.OnDay(events, day)),
		})
	}
	return cells
}

// DayList returns the events of a single day sorted by start, the shape the
// mobile list view renders.
func DayList(date time.Time, events []event.Event) []event.Event {
	return event.SortByStart(event.OnDay(events, date))
}

// Conflicts returns every pair of events that truly overlap. Events touching
// at a boundary are not conflicts.
func Conflicts(events []event.Event) []Conflict {
	sorted := event.SortByStart(events)
	var conflicts []Conflict
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if !sorted[j].StartTime().Before(sorted[i].EndTime()) {
				// sorted by start: nothing later can reach back into i
				break
			}
			if event.Overlaps(sorted[i], sorted[j]) {
				conflicts = append(conflicts, Conflict{A: sorted[i], B: sorted[j]})
			}
		}
	}
	return conflicts
}
