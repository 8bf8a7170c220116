package check_availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// Mock структуры

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) List(ctx context.Context) ([]*domain.Block, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Block), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ListByTuple(ctx context.Context, date, field, timeSlot string, statuses []string) ([]*domain.Reservation, error) {
	args := m.Called(ctx, date, field, timeSlot, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newUseCaseForTest(blockRepo *MockBlockRepository, reservationRepo *MockReservationRepository) *UseCase {
	return NewUseCase(blockRepo, reservationRepo, noopLogger{})
}

func validRequest() *Request {
	return &Request{Date: "2025-06-01", Field: "saha-1", TimeSlot: "16-17"}
}

// Тест 1: блокировка имеет высший приоритет
func TestCheckAvailability_Blocked(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{
		{ID: "b1", StartDate: "2025-06-01", EndDate: "2025-06-01", Field: "saha-1", TimeSlot: "16-17", Reason: "saha bakımda"},
	}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictBlocked, resp.Verdict)
	assert.False(t, resp.Selectable)
	assert.Equal(t, "saha bakımda", resp.BlockReason)

	// До репозитория броней дело не дошло
	blockRepo.AssertExpectations(t)
	reservationRepo.AssertNotCalled(t, "ListByTuple", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Тест 2: блокировка перекрывает даже одобренную бронь
func TestCheckAvailability_BlockWinsOverApproved(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{
		{ID: "b1", StartDate: "2025-06-01", EndDate: "2025-06-30", Field: domain.Wildcard, TimeSlot: domain.Wildcard, Reason: "sezon kapalı"},
	}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictBlocked, resp.Verdict)
	assert.Equal(t, "sezon kapalı", resp.BlockReason)
}

// Тест 3: при пересечении блокировок побеждает причина первой по порядку создания
func TestCheckAvailability_OldestBlockReasonWins(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	// Репозиторий отдаёт блокировки в порядке создания
	blockRepo.On("List", ctx).Return([]*domain.Block{
		{ID: "older", StartDate: "2025-06-01", EndDate: "2025-06-10", Field: "saha-1", TimeSlot: domain.Wildcard, Reason: "ilk sebep"},
		{ID: "newer", StartDate: "2025-06-01", EndDate: "2025-06-01", Field: "saha-1", TimeSlot: "16-17", Reason: "ikinci sebep"},
	}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictBlocked, resp.Verdict)
	assert.Equal(t, "ilk sebep", resp.BlockReason)
}

// Тест 4: одобренная бронь закрывает слот
func TestCheckAvailability_Occupied(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{}, nil).Once()

	expectedStatuses := append(domain.PendingStatusValues(), string(domain.StatusApproved))
	reservationRepo.On("ListByTuple", ctx, "2025-06-01", "saha-1", "16-17", expectedStatuses).Return([]*domain.Reservation{
		{ID: "r1", Status: domain.StatusPending, CustomerName: "Ahmet Yılmaz"},
		{ID: "r2", Status: domain.StatusApproved, CustomerName: "Mehmet Demir"},
	}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictOccupied, resp.Verdict)
	assert.False(t, resp.Selectable)
	assert.Equal(t, "Mehmet Demir", resp.CustomerName)
}

// Тест 5: pending-бронь даёт contested, слот всё ещё можно выбрать
func TestCheckAvailability_Contested(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{}, nil).Once()
	reservationRepo.On("ListByTuple", ctx, "2025-06-01", "saha-1", "16-17", mock.Anything).Return([]*domain.Reservation{
		{ID: "r1", Status: domain.StatusPending, CustomerName: "Ahmet Yılmaz"},
	}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictContested, resp.Verdict)
	assert.True(t, resp.Selectable)
	assert.Equal(t, "Ahmet Yılmaz", resp.CustomerName)
}

// Тест 6: пустой слот свободен
func TestCheckAvailability_Free(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{}, nil).Once()
	reservationRepo.On("ListByTuple", ctx, "2025-06-01", "saha-1", "16-17", mock.Anything).Return([]*domain.Reservation{}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictFree, resp.Verdict)
	assert.True(t, resp.Selectable)
	assert.Empty(t, resp.BlockReason)
	assert.Empty(t, resp.CustomerName)
}

// Тест 7: блокировка на другой кортеж не мешает
func TestCheckAvailability_NonMatchingBlockIgnored(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return([]*domain.Block{
		{ID: "b1", StartDate: "2025-06-02", EndDate: "2025-06-02", Field: "saha-1", TimeSlot: "16-17", Reason: "başka gün"},
	}, nil).Once()
	reservationRepo.On("ListByTuple", ctx, "2025-06-01", "saha-1", "16-17", mock.Anything).Return([]*domain.Reservation{}, nil).Once()

	resp, err := uc.Execute(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, VerdictFree, resp.Verdict)
}

// Тест 8: валидация входных данных
func TestCheckAvailability_ValidationErrors(t *testing.T) {
	uc := newUseCaseForTest(&MockBlockRepository{}, &MockReservationRepository{})
	ctx := context.Background()

	testCases := []struct {
		name string
		req  *Request
	}{
		{name: "missing date", req: &Request{Field: "saha-1", TimeSlot: "16-17"}},
		{name: "bad date format", req: &Request{Date: "01.06.2025", Field: "saha-1", TimeSlot: "16-17"}},
		{name: "missing field", req: &Request{Date: "2025-06-01", TimeSlot: "16-17"}},
		{name: "missing slot", req: &Request{Date: "2025-06-01", Field: "saha-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Тест 9: ошибка репозитория блокировок
func TestCheckAvailability_BlockRepoError(t *testing.T) {
	blockRepo := &MockBlockRepository{}
	reservationRepo := &MockReservationRepository{}
	uc := newUseCaseForTest(blockRepo, reservationRepo)

	ctx := context.Background()
	blockRepo.On("List", ctx).Return(nil, errors.New("db down")).Once()

	_, err := uc.Execute(ctx, validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
