package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrProjectNotFound   = errors.New("project not found")

	// ErrEquipmentUnavailable means the item is in MAINTENANCE, BROKEN or
	// RETIRED status and cannot accept bookings at all.
	ErrEquipmentUnavailable = errors.New("equipment is not in a bookable status")

	// ErrBatchTooLarge rejects an oversize batch wholesale, before any item
	// is processed.
	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of requests")
)

// ConflictError is the AlreadyBooked outcome: the requested interval collides
// with live bookings on serialized equipment. It is a legitimate business
// result, not a fault, and carries the competing bookings for display.
type ConflictError struct {
	EquipmentID int32
	Conflicts   []BookingConflict
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "equipment already booked for the requested period"
	}
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s (%s - %s)",
			c.ProjectName, c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02")))
	}
	return fmt.Sprintf("equipment %d already booked: %s", e.EquipmentID, strings.Join(parts, ", "))
}

// ValidationError reports a malformed request: inverted interval,
// non-positive quantity, quantity above 1 on serialized equipment.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// PersistenceError wraps a transient infrastructure fault. The enclosing unit
// of work was rolled back and the caller may retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsConflict reports whether err is an AlreadyBooked outcome.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
