package event_bus

import "time"

const (
	CalendarEventCreatedType EventType = "calendar.event.created"
	CalendarEventUpdatedType EventType = "calendar.event.updated"
	CalendarEventDeletedType EventType = "calendar.event.deleted"
)

type CalendarEventCreated struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Category  string
}

type CalendarEventUpdated struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Category  string
}

type CalendarEventDeleted struct {
	ID string
}
