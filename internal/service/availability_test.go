package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cinerent-backend/internal/domain"
)

var (
	mar1 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mar5 = time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	mar7 = time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
)

func TestAvailabilityService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("equipment under maintenance is rejected", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusMaintenance}
		err := svc.Resolve(ctx, eq, mar1, mar5, 1, 0)
		assert.ErrorIs(t, err, domain.ErrEquipmentUnavailable)
		bookingRepo.AssertNotCalled(t, "FindOverlapping")
	})

	t.Run("serialized equipment rejects quantity above one", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}
		err := svc.Resolve(ctx, eq, mar1, mar5, 2, 0)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("serialized conflict carries competing bookings", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		conflicts := []domain.BookingConflict{{BookingID: 42, ProjectName: "Night Shoot", StartDate: mar1, EndDate: mar5}}
		bookingRepo.On("FindOverlapping", ctx, int32(1), mar1, mar5, int32(0)).Return(conflicts, nil)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}
		err := svc.Resolve(ctx, eq, mar1, mar5, 1, 0)

		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
		assert.Len(t, conflict.Conflicts, 1)
		assert.Equal(t, "Night Shoot", conflict.Conflicts[0].ProjectName)
	})

	t.Run("serialized with no overlap admits", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		bookingRepo.On("FindOverlapping", ctx, int32(1), mar1, mar5, int32(0)).Return([]domain.BookingConflict{}, nil)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}
		assert.NoError(t, svc.Resolve(ctx, eq, mar1, mar5, 1, 0))
	})

	t.Run("non-serialized bypasses overlap checking", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		eq := &domain.Equipment{ID: 2, Serialized: false, Status: domain.EquipmentStatusAvailable}
		assert.NoError(t, svc.Resolve(ctx, eq, mar1, mar5, 25, 0))
		bookingRepo.AssertNotCalled(t, "FindOverlapping")
	})

	t.Run("inverted interval is a validation error", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}
		err := svc.Resolve(ctx, eq, mar5, mar1, 1, 0)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("single-day interval is legal", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		bookingRepo.On("FindOverlapping", ctx, int32(1), mar1, mar1, int32(0)).Return(nil, nil)

		eq := &domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}
		assert.NoError(t, svc.Resolve(ctx, eq, mar1, mar1, 1, 0))
	})
}

func TestAvailabilityService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("conflict reports unavailable with detail", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		equipmentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}, nil)
		conflicts := []domain.BookingConflict{{BookingID: 9, ProjectName: "Feature Film", StartDate: mar1, EndDate: mar5}}
		bookingRepo.On("FindOverlapping", ctx, int32(1), mar5, mar7, int32(0)).Return(conflicts, nil)

		available, got, err := svc.CheckAvailability(ctx, 1, mar5, mar7, 1, 0)
		assert.NoError(t, err)
		assert.False(t, available)
		assert.Equal(t, conflicts, got)
	})

	t.Run("retired equipment is simply unavailable", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		equipmentRepo.On("GetByID", ctx, int32(3)).Return(&domain.Equipment{ID: 3, Serialized: true, Status: domain.EquipmentStatusRetired}, nil)

		available, conflicts, err := svc.CheckAvailability(ctx, 3, mar1, mar5, 1, 0)
		assert.NoError(t, err)
		assert.False(t, available)
		assert.Empty(t, conflicts)
	})

	t.Run("free equipment is available", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		equipmentRepo.On("GetByID", ctx, int32(1)).Return(&domain.Equipment{ID: 1, Serialized: true, Status: domain.EquipmentStatusAvailable}, nil)
		bookingRepo.On("FindOverlapping", ctx, int32(1), mar1, mar5, int32(0)).Return(nil, nil)

		available, _, err := svc.CheckAvailability(ctx, 1, mar1, mar5, 1, 0)
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("unknown equipment surfaces the error", func(t *testing.T) {
		equipmentRepo := new(MockEquipmentRepo)
		bookingRepo := new(MockBookingRepo)
		svc := NewAvailabilityService(equipmentRepo, bookingRepo)

		equipmentRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrEquipmentNotFound)

		_, _, err := svc.CheckAvailability(ctx, 99, mar1, mar5, 1, 0)
		assert.True(t, errors.Is(err, domain.ErrEquipmentNotFound))
	})
}
