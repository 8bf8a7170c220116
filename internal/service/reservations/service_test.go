package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	reservationRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/reservation"
)

// Mock структуры

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListAll(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, note *string) error {
	args := m.Called(ctx, id, status, note)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// Тест 1: получение брони по ID
func TestReservations_GetByID_Success(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "r1").Return(&domain.Reservation{
		ID:           "r1",
		Date:         "2025-06-01",
		Field:        "saha-1",
		TimeSlot:     "16-17",
		CustomerName: "Ahmet Yılmaz",
		Status:       domain.StatusPending,
	}, nil).Once()

	resp, err := svc.GetByID(ctx, "r1")

	assert.NoError(t, err)
	assert.Equal(t, "r1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

// Тест 2: бронь не найдена
func TestReservations_GetByID_NotFound(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "missing").Return(nil, reservationRepo.ErrReservationNotFound).Once()

	_, err := svc.GetByID(ctx, "missing")

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// Тест 3: список без фильтра
func TestReservations_ListAll_NoFilter(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("ListAll", ctx, (*domain.ReservationStatus)(nil)).Return([]*domain.Reservation{
		{ID: "r2", Status: domain.StatusApproved},
		{ID: "r1", Status: domain.StatusPending},
	}, nil).Once()

	resp, err := svc.ListAll(ctx, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	// Порядок репозитория (новые первыми) сохраняется
	assert.Equal(t, "r2", resp.Reservations[0].ID)
}

// Тест 4: фильтр по статусу, включая legacy-алиас
func TestReservations_ListAll_StatusFilter(t *testing.T) {
	testCases := []struct {
		name     string
		filter   string
		expected domain.ReservationStatus
	}{
		{name: "canonical pending", filter: "pending", expected: domain.StatusPending},
		{name: "legacy alias maps to pending", filter: "Beklemede", expected: domain.StatusPending},
		{name: "approved", filter: "approved", expected: domain.StatusApproved},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &MockReservationRepository{}
			svc := NewService(repo, noopLogger{})

			ctx := context.Background()
			repo.On("ListAll", ctx, &tc.expected).Return([]*domain.Reservation{}, nil).Once()

			_, err := svc.ListAll(ctx, &tc.filter)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

// Тест 5: некорректный фильтр статуса
func TestReservations_ListAll_InvalidFilter(t *testing.T) {
	svc := NewService(&MockReservationRepository{}, noopLogger{})

	filter := "cancelled"
	_, err := svc.ListAll(context.Background(), &filter)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Тест 6: отклонение pending-брони
func TestReservations_Reject_Success(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "r1").Return(&domain.Reservation{ID: "r1", Status: domain.StatusPending}, nil).Once()
	repo.On("UpdateStatus", ctx, "r1", domain.StatusRejected, (*string)(nil)).Return(nil).Once()

	err := svc.Reject(ctx, "r1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Тест 7: повторное отклонение - no-op
func TestReservations_Reject_AlreadyRejectedIsNoop(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "r1").Return(&domain.Reservation{ID: "r1", Status: domain.StatusRejected}, nil).Once()

	err := svc.Reject(ctx, "r1")

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Тест 8: отклонение одобренной брони разрешено (администратор передумал)
func TestReservations_Reject_ApprovedCanBeRejected(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "r1").Return(&domain.Reservation{ID: "r1", Status: domain.StatusApproved}, nil).Once()
	repo.On("UpdateStatus", ctx, "r1", domain.StatusRejected, (*string)(nil)).Return(nil).Once()

	err := svc.Reject(ctx, "r1")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Тест 9: отклонение несуществующей брони
func TestReservations_Reject_NotFound(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("GetByID", ctx, "missing").Return(nil, reservationRepo.ErrReservationNotFound).Once()

	err := svc.Reject(ctx, "missing")

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

// Тест 10: ошибка репозитория
func TestReservations_ListAll_RepoError(t *testing.T) {
	repo := &MockReservationRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("ListAll", ctx, (*domain.ReservationStatus)(nil)).Return(nil, errors.New("db down")).Once()

	_, err := svc.ListAll(ctx, nil)

	assert.ErrorIs(t, err, ErrInternal)
}
