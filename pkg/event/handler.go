package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gridcal/gridcal/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	store *Store
}

// EventDTO is the wire shape. Clients may send the temporal pair as either
// start/end or startDate/endDate; responses always carry the canonical
// startDate/endDate pair.
type EventDTO struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Color       string     `json:"color,omitempty"`
	Category    string     `json:"category,omitempty"`
}

func NewHandler(store *Store) *Handler {
	return &Handler{store}
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	fromString := r.URL.Query().Get("from")
	toString := r.URL.Query().Get("to")
	from, err := time.Parse(time.RFC3339, fromString)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid from (date) format",
			Details: "'from' must be in RFC3339 format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}
	to, err := time.Parse(time.RFC3339, toString)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid to (date) format",
			Details: "'to' must be in RFC3339 format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			return
		}
		return
	}

	events := SortByStart(InRange(h.store.Events(), from, to))

	writeEventList(w, http.StatusOK, events)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := SortByStart(h.store.Events())
	writeEventList(w, http.StatusOK, events)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var eventDTO EventDTO
	if err := json.NewDecoder(r.Body).Decode(&eventDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	added, err := h.store.Add(r.Context(), dtoToEvent(eventDTO))
	if err != nil {
		writeMutationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(added)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventId := vars["eventId"]

	var eventDTO EventDTO
	if err := json.NewDecoder(r.Body).Decode(&eventDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.store.Update(r.Context(), eventId, dtoToEvent(eventDTO))
	if err != nil {
		writeMutationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	eventId := vars["eventId"]
	if err := h.store.Delete(r.Context(), eventId); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeMutationError maps store errors: validation failures are client
// errors with the reason inline, unknown ids are 404s.
func writeMutationError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		if encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: validationErr.Reason}); encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	if errors.Is(err, ErrEventNotFound) {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}
	log.Errorf("event mutation failed: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeEventList(w http.ResponseWriter, status int, events []Event) {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, ToDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// ToDTO converts a canonical event to its wire shape. The alternate
// start/end pair is never emitted.
func ToDTO(e Event) EventDTO {
	e = Normalize(e)
	startDate := e.StartDate
	endDate := e.EndDate
	return EventDTO{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   &startDate,
		EndDate:     &endDate,
		Color:       e.Color,
		Category:    e.Category,
	}
}

func dtoToEvent(dto EventDTO) Event {
	e := Event{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Color:       dto.Color,
		Category:    dto.Category,
		Start:       dto.Start,
		End:         dto.End,
	}
	if dto.StartDate != nil {
		e.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		e.EndDate = *dto.EndDate
	}
	return e
}
