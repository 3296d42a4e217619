package service

import (
	"context"
	"time"

	"cinerent-backend/internal/domain"
)

// AvailabilityService decides whether a requested booking can be admitted.
type AvailabilityService interface {
	// CheckAvailability answers the read-only availability question. When the
	// answer is false for a serialized item, the conflicting bookings are
	// returned so the caller can show what is in the way.
	CheckAvailability(ctx context.Context, equipmentID int32, start, end time.Time, quantity, excludeBookingID int32) (bool, []domain.BookingConflict, error)

	// Resolve runs the admit/reject decision for already-loaded equipment.
	// It returns nil to admit, or ErrEquipmentUnavailable, a ValidationError
	// or a ConflictError to reject. Callers that are about to write must hold
	// the equipment row lock before calling it.
	Resolve(ctx context.Context, eq *domain.Equipment, start, end time.Time, quantity, excludeBookingID int32) error
}

// BookingService creates bookings and drives their lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error)
	CreateBatch(ctx context.Context, reqs []domain.BookingRequest) (*domain.BatchResult, error)
	GetBooking(ctx context.Context, id int32) (*domain.Booking, error)
	UpdateBookingDates(ctx context.Context, id int32, start, end time.Time) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) (*domain.Booking, error)
	ListByProject(ctx context.Context, projectID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByClient(ctx context.Context, clientID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

// ProjectService drives project status and the cascade onto child bookings.
type ProjectService interface {
	GetProject(ctx context.Context, id int32) (*domain.Project, error)
	// TransitionStatus moves the project to the new status. Moving into
	// COMPLETED or CANCELLED finalizes child bookings atomically; the number
	// of bookings touched is returned.
	TransitionStatus(ctx context.Context, id int32, status domain.ProjectStatus) (*domain.Project, int64, error)
}
