package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint periods", Interval{day(1), day(3)}, Interval{day(5), day(7)}, false},
		{"touching endpoints conflict", Interval{day(1), day(5)}, Interval{day(5), day(7)}, true},
		{"partial overlap", Interval{day(1), day(5)}, Interval{day(4), day(8)}, true},
		{"containment", Interval{day(1), day(10)}, Interval{day(3), day(4)}, true},
		{"identical periods", Interval{day(2), day(6)}, Interval{day(2), day(6)}, true},
		{"single day inside", Interval{day(4), day(4)}, Interval{day(1), day(7)}, true},
		{"single day on boundary", Interval{day(7), day(7)}, Interval{day(1), day(7)}, true},
		{"single day just outside", Interval{day(8), day(8)}, Interval{day(1), day(7)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalValidate(t *testing.T) {
	assert.NoError(t, Interval{day(1), day(5)}.Validate())
	assert.NoError(t, Interval{day(5), day(5)}.Validate(), "single-day booking is legal")

	err := Interval{day(5), day(1)}.Validate()
	assert.True(t, IsValidation(err))
}

func TestIntervalContains(t *testing.T) {
	i := Interval{day(2), day(6)}
	assert.True(t, i.Contains(day(2)))
	assert.True(t, i.Contains(day(6)))
	assert.True(t, i.Contains(day(4)))
	assert.False(t, i.Contains(day(1)))
	assert.False(t, i.Contains(day(7)))
}

func TestBookingStatusTransitions(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusOverdue,
	}
	for _, from := range all {
		for _, to := range all {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatus("FROZEN")))
}

func TestProjectStatusTerminal(t *testing.T) {
	assert.True(t, ProjectStatusCompleted.Terminal())
	assert.True(t, ProjectStatusCancelled.Terminal())
	assert.False(t, ProjectStatusDraft.Terminal())
	assert.False(t, ProjectStatusActive.Terminal())
}
