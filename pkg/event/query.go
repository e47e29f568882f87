package event

import (
	"sort"
	"time"

	"github.com/gridcal/gridcal/pkg/dateutil"
)

// InRange returns the events whose [start, end] span intersects [from, to].
// The test is closed-interval: an event touching the window boundary is
// included, so a view querying "what is visible today" picks up events that
// end exactly at its first instant.
func InRange(events []Event, from, to time.Time) []Event {
	matched := make([]Event, 0, len(events))
	for _, e := range events {
		if !e.StartTime().After(to) && !e.EndTime().Before(from) {
			matched = append(matched, e)
		}
	}
	return matched
}

// OnDay returns the events intersecting the given calendar day, from local
// midnight to 23:59:59.999.
func OnDay(events []Event, day time.Time) []Event {
	return InRange(events, dateutil.StartOfDay(day), dateutil.EndOfDay(day))
}

// Overlaps reports whether two events conflict in time. Unlike InRange this
// is a strict open-interval test: events that merely touch at a boundary
// (one ends exactly when the other starts) do not conflict.
func Overlaps(a, b Event) bool {
	return a.StartTime().Before(b.EndTime()) && b.StartTime().Before(a.EndTime())
}

// SortByStart returns a copy of events ordered ascending by start time.
// The sort is stable: ties keep their original relative order.
func SortByStart(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime().Before(sorted[j].StartTime())
	})
	return sorted
}
