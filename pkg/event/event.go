package event

import "time"

// Event is a calendar event. StartDate/EndDate is the canonical temporal
// pair; Start/End is an alternate input shape that some callers still send.
// Normalize folds the alternate pair into the canonical one — only the
// canonical pair is ever stored or serialized.
type Event struct {
	ID          string
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
	Category    string

	// Alternate temporal shape, input only. Takes precedence over the
	// canonical pair when set.
	Start *time.Time
	End   *time.Time
}

// StartTime returns the effective start of the event regardless of which
// temporal shape it carries. All range and overlap logic goes through this
// accessor (and EndTime) instead of reading the fields directly.
func (e Event) StartTime() time.Time {
	if e.Start != nil {
		return *e.Start
	}
	return e.StartDate
}

// EndTime returns the effective end of the event.
func (e Event) EndTime() time.Time {
	if e.End != nil {
		return *e.End
	}
	return e.EndDate
}

// Normalize returns e with its temporal fields folded into the canonical
// StartDate/EndDate pair and the alternate pair cleared. Non-temporal fields
// pass through unchanged. Normalizing an already-canonical event is a no-op.
func Normalize(e Event) Event {
	e.StartDate = e.StartTime()
	e.EndDate = e.EndTime()
	e.Start = nil
	e.End = nil
	return e
}
