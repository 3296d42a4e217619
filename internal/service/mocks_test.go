package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"cinerent-backend/internal/domain"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}
func (m *MockEquipmentRepo) UpdateStatus(ctx context.Context, id int32, status domain.EquipmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockEquipmentRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Equipment, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Equipment), args.Get(1).(int32), args.Error(2)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdatePaymentStatus(ctx context.Context, id int32, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateQuantity(ctx context.Context, id int32, quantity int32) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockBookingRepo) UpdateDates(ctx context.Context, id int32, start, end time.Time) error {
	args := m.Called(ctx, id, start, end)
	return args.Error(0)
}
func (m *MockBookingRepo) SoftDelete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) FindOverlapping(ctx context.Context, equipmentID int32, start, end time.Time, excludeBookingID int32) ([]domain.BookingConflict, error) {
	args := m.Called(ctx, equipmentID, start, end, excludeBookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingConflict), args.Error(1)
}
func (m *MockBookingRepo) FindMergeable(ctx context.Context, equipmentID int32, projectID *int32, start, end time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, equipmentID, projectID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByProject(ctx context.Context, projectID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, projectID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListByClient(ctx context.Context, clientID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, clientID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}

// MockProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id int32) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectRepo) UpdateStatus(ctx context.Context, id int32, status domain.ProjectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockProjectRepo) FinalizeBookings(ctx context.Context, projectID int32) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

// passthroughTx runs the function directly, standing in for a real
// transaction in unit tests.
type passthroughTx struct{}

func (passthroughTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
