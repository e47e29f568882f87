package event

import "strings"

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ValidationError reports why an event was rejected. Callers are expected to
// surface the reason to the user (keep the modal open, show the message) and
// resubmit; the store never changes state on a validation failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// Validate checks a canonical event. Checks run in a fixed order and the
// first failure short-circuits the rest.
func Validate(e Event) error {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return invalid("title required")
	}
	if len([]rune(title)) > MaxTitleLength {
		return invalid("title too long")
	}
	if len([]rune(e.Description)) > MaxDescriptionLength {
		return invalid("description too long")
	}
	if e.StartTime().IsZero() {
		return invalid("invalid start")
	}
	if e.EndTime().IsZero() {
		return invalid("invalid end")
	}
	if !e.EndTime().After(e.StartTime()) {
		return invalid("end must be after start")
	}
	return nil
}
