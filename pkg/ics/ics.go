package ics

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gridcal/gridcal/pkg/event"
)

const productID = "-//gridcal//gridcal//EN"

// Encode writes the events as a single VCALENDAR document. Times are
// serialized in UTC, optional fields are omitted when empty.
func Encode(w io.Writer, events []event.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	stamp := time.Now().UTC()
	for _, e := range events {
		cal.Children = append(cal.Children, toComponent(e, stamp))
	}

	return ical.NewEncoder(w).Encode(cal)
}

// Decode parses every VEVENT in the stream. Components without parseable
// start and end times are logged and skipped, a malformed stream fails as
// a whole.
func Decode(r io.Reader) ([]event.Event, error) {
	decoder := ical.NewDecoder(r)

	var events []event.Event
	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse calendar data: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			e, err := fromComponent(comp)
			if err != nil {
				log.WithError(err).Warn("Skipping calendar component")
				continue
			}
			events = append(events, e)
		}
	}

	return events, nil
}

func toComponent(e event.Event, stamp time.Time) *ical.Component {
	vevent := ical.NewEvent()

	uid := e.ID
	if uid == "" {
		uid = uuid.New().String()
	}
	vevent.Props.SetText(ical.PropUID, uid)
	vevent.Props.SetText(ical.PropSummary, e.Title)
	if e.Description != "" {
		vevent.Props.SetText(ical.PropDescription, e.Description)
	}
	if e.Category != "" {
		vevent.Props.SetText(ical.PropCategories, e.Category)
	}
	if e.Color != "" {
		vevent.Props.SetText(ical.PropColor, e.Color)
	}
	vevent.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime().UTC())
	vevent.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime().UTC())
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, stamp)

	return vevent.Component
}

func fromComponent(comp *ical.Component) (event.Event, error) {
	var e event.Event

	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		e.ID = prop.Value
	}
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		e.Title = prop.Value
	}
	if prop := comp.Props.Get(ical.PropDescription); prop != nil {
		e.Description = prop.Value
	}
	if prop := comp.Props.Get(ical.PropCategories); prop != nil {
		e.Category = prop.Value
	}
	if prop := comp.Props.Get(ical.PropColor); prop != nil {
		e.Color = prop.Value
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return e, errors.New("missing DTSTART")
	}
	start, err := startProp.DateTime(time.Local)
	if err != nil {
		return e, fmt.Errorf("invalid DTSTART: %w", err)
	}

	endProp := comp.Props.Get(ical.PropDateTimeEnd)
	if endProp == nil {
		return e, errors.New("missing DTEND")
	}
	end, err := endProp.DateTime(time.Local)
	if err != nil {
		return e, fmt.Errorf("invalid DTEND: %w", err)
	}

	e.StartDate = start
	e.EndDate = end
	return e, nil
}
