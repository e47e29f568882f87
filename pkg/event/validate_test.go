package event

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() Event {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	return Event{
		ID:        "evt-1",
		Title:     "Standup",
		StartDate: start,
		EndDate:   start.Add(30 * time.Minute),
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(e *Event)
		wantReason string
	}{
		{
			name:   "valid event",
			mutate: func(e *Event) {},
		},
		{
			name:       "empty title",
			mutate:     func(e *Event) { e.Title = "" },
			wantReason: "title required",
		},
		{
			name:       "whitespace-only title",
			mutate:     func(e *Event) { e.Title = "   " },
			wantReason: "title required",
		},
		{
			name:   "title at the limit",
			mutate: func(e *Event) { e.Title = strings.Repeat("a", MaxTitleLength) },
		},
		{
			name:       "title over the limit",
			mutate:     func(e *Event) { e.Title = strings.Repeat("a", MaxTitleLength+1) },
			wantReason: "title too long",
		},
		{
			name:   "trimming happens before the length check",
			mutate: func(e *Event) { e.Title = "  " + strings.Repeat("a", MaxTitleLength) + "  " },
		},
		{
			name:   "description at the limit",
			mutate: func(e *Event) { e.Description = strings.Repeat("d", MaxDescriptionLength) },
		},
		{
			name:       "description over the limit",
			mutate:     func(e *Event) { e.Description = strings.Repeat("d", MaxDescriptionLength+1) },
			wantReason: "description too long",
		},
		{
			name:       "missing start",
			mutate:     func(e *Event) { e.StartDate = time.Time{} },
			wantReason: "invalid start",
		},
		{
			name:       "missing end",
			mutate:     func(e *Event) { e.EndDate = time.Time{} },
			wantReason: "invalid end",
		},
		{
			name:       "end equals start",
			mutate:     func(e *Event) { e.EndDate = e.StartDate },
			wantReason: "end must be after start",
		},
		{
			name:       "end before start",
			mutate:     func(e *Event) { e.EndDate = e.StartDate.Add(-time.Hour) },
			wantReason: "end must be after start",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEvent()
			tc.mutate(&e)

			err := Validate(e)
			if tc.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantReason, validationErr.Reason)
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// Several checks fail at once; the title check runs first.
	e := Event{Title: "", Description: strings.Repeat("d", MaxDescriptionLength+1)}

	err := Validate(e)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title required", validationErr.Reason)
}
