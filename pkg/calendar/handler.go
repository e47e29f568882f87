package calendar

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gridcal/gridcal/internal/rest"
	"github.com/gridcal/gridcal/pkg/event"
)

type Handler struct {
	service *Service
}

type CellDTO struct {
	Date    string           `json:"date"`
	InMonth bool             `json:"inMonth"`
	Events  []event.EventDTO `json:"events"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	anchor, ok := parseDateParam(w, r)
	if !ok {
		return
	}
	writeCells(w, h.service.Month(anchor))
}

func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	anchor, ok := parseDateParam(w, r)
	if !ok {
		return
	}
	writeCells(w, h.service.Week(anchor))
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	events := h.service.Day(date)
	dtos := make([]event.EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, event.ToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// parseDateParam reads the optional "date" query parameter, accepting
// RFC3339 or a plain calendar date. A missing parameter yields the zero time,
// which the service resolves to "now".
func parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateString := r.URL.Query().Get("date")
	if dateString == "" {
		return time.Time{}, true
	}
	if date, err := time.Parse(time.RFC3339, dateString); err == nil {
		return date, true
	}
	if date, err := time.ParseInLocation("2006-01-02", dateString, time.Local); err == nil {
		return date, true
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
		Error:   "Invalid date format",
		Details: "'date' must be in RFC3339 or YYYY-MM-DD format",
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	return time.Time{}, false
}

func writeCells(w http.ResponseWriter, cells []Cell) {
	dtos := make([]CellDTO, 0, len(cells))
	for _, cell := range cells {
		eventDTOs := make([]event.EventDTO, 0, len(cell.Events))
		for _, e := range cell.Events {
			eventDTOs = append(eventDTOs, event.ToDTO(e))
		}
		dtos = append(dtos, CellDTO{
			Date:    cell.Date.Format("2006-01-02"),
			InMonth: cell.InMonth,
			Events:  eventDTOs,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
