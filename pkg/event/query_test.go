package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedEvent(id, title string, start, end time.Time) Event {
	return Event{ID: id, Title: title, StartDate: start, EndDate: end}
}

func TestInRange(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	events := []Event{
		timedEvent("evt-1", "Morning", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		timedEvent("evt-2", "Lunch", day.Add(12*time.Hour), day.Add(13*time.Hour)),
		timedEvent("evt-3", "Tomorrow", day.Add(33*time.Hour), day.Add(34*time.Hour)),
	}

	testCases := []struct {
		name    string
		from    time.Time
		to      time.Time
		wantIds []string
	}{
		{
			name:    "window covering one event",
			from:    day.Add(11 * time.Hour),
			to:      day.Add(14 * time.Hour),
			wantIds: []string{"evt-2"},
		},
		{
			name:    "window covering the whole day",
			from:    day,
			to:      day.Add(24 * time.Hour),
			wantIds: []string{"evt-1", "evt-2"},
		},
		{
			name:    "boundary touch is inclusive on both sides",
			from:    day.Add(10 * time.Hour), // == evt-1 end
			to:      day.Add(12 * time.Hour), // == evt-2 start
			wantIds: []string{"evt-1", "evt-2"},
		},
		{
			name:    "empty window between events",
			from:    day.Add(10*time.Hour + time.Minute),
			to:      day.Add(11 * time.Hour),
			wantIds: []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InRange(events, tc.from, tc.to)
			gotIds := make([]string, 0, len(got))
			for _, e := range got {
				gotIds = append(gotIds, e.ID)
			}
			assert.Equal(t, tc.wantIds, gotIds)
		})
	}
}

func TestOnDay(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	events := []Event{
		timedEvent("evt-1", "Today", day.Add(9*time.Hour), day.Add(10*time.Hour)),
		timedEvent("evt-2", "Crosses midnight", day.Add(23*time.Hour), day.Add(25*time.Hour)),
		timedEvent("evt-3", "Next day only", day.Add(26*time.Hour), day.Add(27*time.Hour)),
	}

	got := OnDay(events, day.Add(15*time.Hour))

	require.Len(t, got, 2)
	assert.Equal(t, "evt-1", got[0].ID)
	assert.Equal(t, "evt-2", got[1].ID)
}

func TestOverlaps_StrictAtBoundaries(t *testing.T) {
	ten := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	a := timedEvent("a", "A", ten, ten.Add(time.Hour))                // 10:00–11:00
	b := timedEvent("b", "B", ten.Add(time.Hour), ten.Add(2*time.Hour)) // 11:00–12:00

	assert.False(t, Overlaps(a, b))
	assert.False(t, Overlaps(b, a))

	c := timedEvent("c", "C", ten.Add(30*time.Minute), ten.Add(90*time.Minute))
	assert.True(t, Overlaps(a, c))
	assert.True(t, Overlaps(c, a))
}

// Two adjacent events do not conflict, yet a range query spanning their
// shared boundary sees both. The two tests deliberately use different
// boundary semantics.
func TestRangeAndOverlapBoundaryAsymmetry(t *testing.T) {
	ten := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	a := timedEvent("a", "A", ten, ten.Add(time.Hour))
	b := timedEvent("b", "B", ten.Add(time.Hour), ten.Add(2*time.Hour))

	assert.False(t, Overlaps(a, b))

	got := InRange([]Event{a, b}, ten.Add(30*time.Minute), ten.Add(90*time.Minute))
	assert.Len(t, got, 2)
}

func TestSortByStart_StableOnTies(t *testing.T) {
	ten := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)
	events := []Event{
		timedEvent("late", "Late", ten.Add(2*time.Hour), ten.Add(3*time.Hour)),
		timedEvent("tie-1", "First tie", ten, ten.Add(time.Hour)),
		timedEvent("tie-2", "Second tie", ten, ten.Add(2*time.Hour)),
	}

	got := SortByStart(events)

	require.Len(t, got, 3)
	assert.Equal(t, "tie-1", got[0].ID)
	assert.Equal(t, "tie-2", got[1].ID)
	assert.Equal(t, "late", got[2].ID)

	// Input order is untouched.
	assert.Equal(t, "late", events[0].ID)
}
