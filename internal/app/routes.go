package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Events
	r.HandleFunc("/api/event", deps.EventHandler.GetEvents).Queries("from", "{from}", "to", "{to}").Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.ListEvents).Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.UpdateEvent).Methods("PUT")
	r.HandleFunc("/api/event/{eventId}", deps.EventHandler.DeleteEvent).Methods("DELETE")

	// Calendar views
	r.HandleFunc("/api/calendar/month", deps.CalendarHandler.GetMonth).Methods("GET")
	r.HandleFunc("/api/calendar/week", deps.CalendarHandler.GetWeek).Methods("GET")
	r.HandleFunc("/api/calendar/day", deps.CalendarHandler.GetDay).Methods("GET")

	// iCalendar interchange
	r.HandleFunc("/api/calendar/ics", deps.IcsHandler.ExportCalendar).Methods("GET")
	r.HandleFunc("/api/calendar/ics", deps.IcsHandler.ImportCalendar).Methods("POST")
}
