package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/logger"
	"cinerent-backend/internal/repository"
)

type bookingService struct {
	bookingRepo   repository.BookingRepository
	equipmentRepo repository.EquipmentRepository
	availability  AvailabilityService
	tx            repository.Tx
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	equipmentRepo repository.EquipmentRepository,
	availability AvailabilityService,
	tx repository.Tx,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		equipmentRepo: equipmentRepo,
		availability:  availability,
		tx:            tx,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		b, _, err := s.createOne(txCtx, req)
		if err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// createOne runs the per-item pipeline: lock the equipment row, try to merge
// into an existing booking, otherwise resolve availability and insert. The
// caller must already be inside a transaction; the FOR UPDATE lock taken here
// is what keeps two concurrent admits for the same serialized item from both
// succeeding.
func (s *bookingService) createOne(ctx context.Context, req domain.BookingRequest) (*domain.Booking, domain.BatchOutcome, error) {
	if err := (domain.Interval{Start: req.StartDate, End: req.EndDate}).Validate(); err != nil {
		return nil, domain.BatchOutcomeRejected, err
	}
	if req.Quantity < 1 {
		return nil, domain.BatchOutcomeRejected, &domain.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	eq, err := s.equipmentRepo.GetByIDForUpdate(ctx, req.EquipmentID)
	if err != nil {
		return nil, domain.BatchOutcomeRejected, err
	}

	// Non-serialized bookings for the same project and identical dates merge
	// into one row instead of piling up duplicates: scanning the same cable
	// five times should produce one line with quantity 5 on the invoice.
	if !eq.Serialized {
		existing, err := s.bookingRepo.FindMergeable(ctx, req.EquipmentID, req.ProjectID, req.StartDate, req.EndDate)
		if err != nil {
			return nil, domain.BatchOutcomeRejected, err
		}
		if existing != nil {
			newQuantity := existing.Quantity + req.Quantity
			if err := s.bookingRepo.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
				return nil, domain.BatchOutcomeRejected, err
			}
			existing.Quantity = newQuantity
			logger.Debug("merged booking", "booking_id", existing.ID, "quantity", newQuantity)
			return existing, domain.BatchOutcomeMerged, nil
		}
	}

	if err := s.availability.Resolve(ctx, eq, req.StartDate, req.EndDate, req.Quantity, 0); err != nil {
		return nil, domain.BatchOutcomeRejected, err
	}

	booking := &domain.Booking{
		EquipmentID:   req.EquipmentID,
		ClientID:      req.ClientID,
		ProjectID:     req.ProjectID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Quantity:      req.Quantity,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, domain.BatchOutcomeRejected, err
	}
	return booking, domain.BatchOutcomeCreated, nil
}

// rejection reports whether err is an expected per-item business outcome, as
// opposed to an infrastructure fault that must abort the whole batch.
func rejection(err error) bool {
	return domain.IsValidation(err) ||
		domain.IsConflict(err) ||
		errors.Is(err, domain.ErrEquipmentUnavailable) ||
		errors.Is(err, domain.ErrEquipmentNotFound)
}

func (s *bookingService) CreateBatch(ctx context.Context, reqs []domain.BookingRequest) (*domain.BatchResult, error) {
	if len(reqs) > domain.MaxBatchSize {
		return nil, domain.ErrBatchTooLarge
	}

	result := &domain.BatchResult{
		BatchID: uuid.NewString(),
		Total:   len(reqs),
	}

	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		for i, req := range reqs {
			booking, outcome, err := s.createOne(txCtx, req)
			if err != nil {
				if rejection(err) {
					item := domain.BatchItemResult{
						Index:   i,
						Outcome: domain.BatchOutcomeRejected,
						Reason:  err.Error(),
					}
					var conflict *domain.ConflictError
					if errors.As(err, &conflict) {
						item.Conflicts = conflict.Conflicts
					}
					result.Failed = append(result.Failed, item)
					continue
				}
				return err
			}
			result.Succeeded = append(result.Succeeded, domain.BatchItemResult{
				Index:   i,
				Outcome: outcome,
				Booking: booking,
			})
		}
		return nil
	})
	if err != nil {
		// Nothing from this batch was committed.
		result.Succeeded = nil
		result.RolledBack = true
		logger.Error("batch rolled back", "batch_id", result.BatchID, "error", err)
		return result, &domain.PersistenceError{Op: "create batch", Err: err}
	}

	logger.Info("batch processed",
		"batch_id", result.BatchID,
		"total", result.Total,
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed))
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// UpdateBookingDates moves a booking to a new period, re-running admission
// with the booking itself excluded so it does not conflict with its own row.
func (s *bookingService) UpdateBookingDates(ctx context.Context, id int32, start, end time.Time) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.tx.WithTx(ctx, func(txCtx context.Context) error {
		b, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		eq, err := s.equipmentRepo.GetByIDForUpdate(txCtx, b.EquipmentID)
		if err != nil {
			return err
		}
		if err := s.availability.Resolve(txCtx, eq, start, end, b.Quantity, b.ID); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateDates(txCtx, b.ID, start, end); err != nil {
			return err
		}
		b.StartDate = start
		b.EndDate = end
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// TransitionStatus is the user-driven entry point. Every transition between
// valid statuses is legal; only the cascade from project events bypasses this
// path.
func (s *bookingService) TransitionStatus(ctx context.Context, id int32, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Message: "unknown booking status"}
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, &domain.ValidationError{Field: "status", Message: "transition not allowed"}
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.Status = status
	logger.Info("booking status changed", "booking_id", id, "status", status)
	return booking, nil
}

// UpdatePaymentStatus is independent of the booking lifecycle: invoices are
// commonly settled after the equipment has already come back.
func (s *bookingService) UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Field: "payment_status", Message: "unknown payment status"}
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bookingRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	booking.PaymentStatus = status
	return booking, nil
}

func (s *bookingService) ListByProject(ctx context.Context, projectID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByProject(ctx, projectID, status, page, pageSize)
}

func (s *bookingService) ListByClient(ctx context.Context, clientID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByClient(ctx, clientID, status, page, pageSize)
}
