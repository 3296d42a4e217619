package domain

import "time"

// Interval is a reservation period. Bounds are inclusive on both ends: a
// booking ending exactly when another starts counts as a conflict, which
// avoids same-minute handoff ambiguity at the warehouse.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Validate rejects inverted intervals. Start == End is legal: single-day
// bookings are a normal rental shape.
func (i Interval) Validate() error {
	if i.Start.After(i.End) {
		return &ValidationError{Field: "start_date", Message: "start date must not be after end date"}
	}
	return nil
}

// Overlaps reports whether the two intervals intersect under the inclusive
// endpoint comparison: a.Start <= b.End && a.End >= b.Start.
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !i.End.Before(other.Start)
}

// Contains reports whether t falls inside the interval, bounds included.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}
