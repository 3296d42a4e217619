package service

import (
	"context"
	"errors"
	"time"

	"cinerent-backend/internal/domain"
	"cinerent-backend/internal/logger"
	"cinerent-backend/internal/repository"
)

type availabilityService struct {
	equipmentRepo repository.EquipmentRepository
	bookingRepo   repository.BookingRepository
}

func NewAvailabilityService(equipmentRepo repository.EquipmentRepository, bookingRepo repository.BookingRepository) AvailabilityService {
	return &availabilityService{
		equipmentRepo: equipmentRepo,
		bookingRepo:   bookingRepo,
	}
}

func (s *availabilityService) CheckAvailability(ctx context.Context, equipmentID int32, start, end time.Time, quantity, excludeBookingID int32) (bool, []domain.BookingConflict, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return false, nil, err
	}

	err = s.Resolve(ctx, eq, start, end, quantity, excludeBookingID)
	if err == nil {
		return true, nil, nil
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return false, conflict.Conflicts, nil
	}
	if errors.Is(err, domain.ErrEquipmentUnavailable) {
		return false, nil, nil
	}
	return false, nil, err
}

// Resolve applies the admission rules in order: request shape, equipment
// status, then scarcity. Serialized equipment models one physical unit, so a
// single live overlap rejects. Non-serialized equipment is consumable stock
// (cables, adapters) with no tracked ceiling, so overlap checking is bypassed
// on purpose rather than by omission.
func (s *availabilityService) Resolve(ctx context.Context, eq *domain.Equipment, start, end time.Time, quantity, excludeBookingID int32) error {
	if err := (domain.Interval{Start: start, End: end}).Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return &domain.ValidationError{Field: "quantity", Message: "quantity must be at least 1"}
	}

	if !eq.Status.Bookable() {
		return domain.ErrEquipmentUnavailable
	}

	if !eq.Serialized {
		return nil
	}

	if quantity != 1 {
		return &domain.ValidationError{Field: "quantity", Message: "serialized equipment is booked one unit at a time"}
	}

	conflicts, err := s.bookingRepo.FindOverlapping(ctx, eq.ID, start, end, excludeBookingID)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		logger.Debug("availability rejected", "equipment_id", eq.ID, "conflicts", len(conflicts))
		return &domain.ConflictError{EquipmentID: eq.ID, Conflicts: conflicts}
	}
	return nil
}
