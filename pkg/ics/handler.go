package ics

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/gridcal/gridcal/internal/rest"
	"github.com/gridcal/gridcal/pkg/event"
)

type Handler struct {
	store *event.Store
}

type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

func NewHandler(store *event.Store) *Handler {
	return &Handler{store}
}

// ExportCalendar serves the full event collection as an iCalendar document.
func (h *Handler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="gridcal.ics"`)
	if err := Encode(w, event.SortByStart(h.store.Events())); err != nil {
		log.WithError(err).Error("Failed to encode calendar export")
	}
}

// ImportCalendar reads an iCalendar document from the request body and adds
// each event to the store. Events that fail validation are reported back
// instead of aborting the whole import.
func (h *Handler) ImportCalendar(w http.ResponseWriter, r *http.Request) {
	events, err := Decode(r.Body)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid calendar data",
			Details: err.Error(),
		}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := ImportResultDTO{}
	for _, e := range events {
		if _, err := h.store.Add(r.Context(), e); err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %s", e.ID, err))
			continue
		}
		result.Imported++
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
