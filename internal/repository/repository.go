package repository

import (
	"context"
	"time"

	"cinerent-backend/internal/domain"
)

// EquipmentRepository reads the equipment directory. The directory is owned
// by the catalog side of the application; the engine never writes to it
// except for the derived RENTED flag.
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	// GetByIDForUpdate locks the equipment row for the duration of the
	// surrounding transaction, serializing concurrent admit decisions for
	// the same item.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error)
}

// BookingRepository owns booking rows. Every read filters soft-deleted rows
// through one shared predicate; callers never see deleted bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error
	UpdateQuantity(ctx context.Context, id int32, quantity int32) error
	UpdateDates(ctx context.Context, id int32, start, end time.Time) error
	SoftDelete(ctx context.Context, id int32) error

	// FindOverlapping returns live bookings for the equipment whose period
	// intersects [start, end] inclusively. excludeBookingID (0 = none) lets
	// an update compare a booking against all other bookings.
	FindOverlapping(ctx context.Context, equipmentID int32, start, end time.Time, excludeBookingID int32) ([]domain.BookingConflict, error)

	// FindMergeable returns the live booking with the same equipment,
	// project and exactly matching dates, or nil when there is none.
	FindMergeable(ctx context.Context, equipmentID int32, projectID *int32, start, end time.Time) (*domain.Booking, error)

	ListByProject(ctx context.Context, projectID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	ListByClient(ctx context.Context, clientID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type ProjectRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Project, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ProjectStatus) error
	// FinalizeBookings transitions every live child booking not already
	// COMPLETED or CANCELLED to COMPLETED and soft-deletes it, returning the
	// number of bookings touched. Callers run it inside the same transaction
	// as the project status update.
	FinalizeBookings(ctx context.Context, projectID int32) (int64, error)
}

// Tx runs fn inside a single database transaction. Nested calls join the
// transaction already in flight.
type Tx interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
