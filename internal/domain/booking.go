package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusOverdue   BookingStatus = "OVERDUE"
)

var bookingStatuses = map[BookingStatus]bool{
	BookingStatusPending:   true,
	BookingStatusConfirmed: true,
	BookingStatusActive:    true,
	BookingStatusCompleted: true,
	BookingStatusCancelled: true,
	BookingStatusOverdue:   true,
}

func (s BookingStatus) Valid() bool { return bookingStatuses[s] }

// CanTransitionTo reports whether a user-driven transition to target is
// allowed. Every pair is legal: the business runs B2B and corrects booking
// state freely, so the transition relation is the identity. Cascades from
// project events go through the repository directly and never through here.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	return target.Valid()
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPartial  PaymentStatus = "PARTIAL"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
)

var paymentStatuses = map[PaymentStatus]bool{
	PaymentStatusPending:  true,
	PaymentStatusPartial:  true,
	PaymentStatusPaid:     true,
	PaymentStatusRefunded: true,
	PaymentStatusOverdue:  true,
}

func (s PaymentStatus) Valid() bool { return paymentStatuses[s] }

// Booking is a time-bounded reservation of one equipment item. Quantity is
// meaningful only for non-serialized equipment and is always 1 for serialized
// items. Bookings are never hard-deleted; DeletedAt marks them out of every
// overlap and listing computation while keeping them for history.
type Booking struct {
	ID            int32         `json:"id"`
	EquipmentID   int32         `json:"equipment_id"`
	ClientID      int32         `json:"client_id"`
	ProjectID     *int32        `json:"project_id,omitempty"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Quantity      int32         `json:"quantity"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	DeletedAt     *time.Time    `json:"deleted_at,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
	UpdatedOn     time.Time     `json:"updated_on"`
}

// Live reports whether the booking participates in overlap and listing
// computations.
func (b *Booking) Live() bool {
	return b.DeletedAt == nil && b.Status != BookingStatusCancelled
}

// BookingConflict carries enough detail about a competing booking for the
// caller to render an actionable message ("booked by Project X, 03/01-03/05").
type BookingConflict struct {
	BookingID   int32     `json:"booking_id"`
	ProjectID   *int32    `json:"project_id,omitempty"`
	ProjectName string    `json:"project_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}
