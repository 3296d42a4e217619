package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
	EquipmentStatusBroken      EquipmentStatus = "BROKEN"
	EquipmentStatusRetired     EquipmentStatus = "RETIRED"
	// RENTED is derived from live bookings and is never set by hand.
	EquipmentStatusRented EquipmentStatus = "RENTED"
)

// Bookable reports whether equipment in this status may accept new bookings.
func (s EquipmentStatus) Bookable() bool {
	switch s {
	case EquipmentStatusMaintenance, EquipmentStatusBroken, EquipmentStatusRetired:
		return false
	}
	return true
}

// Equipment is owned by the equipment directory and is read-only to the
// reservation engine. Serialized equipment is a single physical unit tracked
// by serial number; non-serialized equipment is a pooled category booked by
// quantity.
type Equipment struct {
	ID           int32           `json:"id"`
	Name         string          `json:"name"`
	Serialized   bool            `json:"serialized"`
	SerialNumber string          `json:"serial_number,omitempty"`
	Status       EquipmentStatus `json:"status"`
	CreatedOn    time.Time       `json:"created_on"`
	DeletedOn    *time.Time      `json:"deleted_on,omitempty"`
}
