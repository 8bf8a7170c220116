package blocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	blockRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/block"
	"github.com/m04kA/HalisahaBookingService/internal/service/blocks/models"
)

// Mock структуры

type MockBlockRepository struct {
	mock.Mock
}

func (m *MockBlockRepository) Create(ctx context.Context, blk *domain.Block) (*domain.Block, error) {
	args := m.Called(ctx, blk)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Block), args.Error(1)
}

func (m *MockBlockRepository) List(ctx context.Context) ([]*domain.Block, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Block), args.Error(1)
}

func (m *MockBlockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validBlockRequest() *models.CreateBlockRequest {
	return &models.CreateBlockRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
		Field:     "saha-1",
		TimeSlot:  "16-17",
		Reason:    "saha bakımda",
	}
}

// Тест 1: успешное создание блокировки
func TestBlocks_Create_Success(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Block")).Return(&domain.Block{
		ID:        "b1",
		StartDate: "2025-06-01",
		EndDate:   "2025-06-10",
		Field:     "saha-1",
		TimeSlot:  "16-17",
		Reason:    "saha bakımda",
	}, nil).Once()

	resp, err := svc.Create(ctx, validBlockRequest())

	assert.NoError(t, err)
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "saha bakımda", resp.Reason)
	repo.AssertExpectations(t)
}

// Тест 2: wildcard разрешён и для поля, и для слота
func TestBlocks_Create_WildcardAllowed(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	req := validBlockRequest()
	req.Field = domain.Wildcard
	req.TimeSlot = domain.Wildcard

	repo.On("Create", ctx, mock.Anything).Return(&domain.Block{ID: "b1", Field: "all", TimeSlot: "all", Reason: req.Reason}, nil).Once()

	_, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// Тест 3: валидация входных данных
func TestBlocks_Create_ValidationErrors(t *testing.T) {
	svc := NewService(&MockBlockRepository{}, noopLogger{})
	ctx := context.Background()

	testCases := []struct {
		name   string
		mutate func(req *models.CreateBlockRequest)
	}{
		{name: "empty reason", mutate: func(r *models.CreateBlockRequest) { r.Reason = "" }},
		{name: "bad start date", mutate: func(r *models.CreateBlockRequest) { r.StartDate = "01.06.2025" }},
		{name: "bad end date", mutate: func(r *models.CreateBlockRequest) { r.EndDate = "вчера" }},
		{name: "inverted range", mutate: func(r *models.CreateBlockRequest) { r.StartDate, r.EndDate = "2025-06-10", "2025-06-01" }},
		{name: "unknown field", mutate: func(r *models.CreateBlockRequest) { r.Field = "saha-9" }},
		{name: "unknown slot", mutate: func(r *models.CreateBlockRequest) { r.TimeSlot = "23-24" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBlockRequest()
			tc.mutate(req)

			_, err := svc.Create(ctx, req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// Тест 4: однодневная блокировка (startDate == endDate) валидна
func TestBlocks_Create_SingleDayRange(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	req := validBlockRequest()
	req.EndDate = req.StartDate

	repo.On("Create", ctx, mock.Anything).Return(&domain.Block{ID: "b1", Reason: req.Reason}, nil).Once()

	_, err := svc.Create(ctx, req)

	assert.NoError(t, err)
}

// Тест 5: список блокировок
func TestBlocks_List(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("List", ctx).Return([]*domain.Block{
		{ID: "b1", Reason: "birinci"},
		{ID: "b2", Reason: "ikinci"},
	}, nil).Once()

	resp, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "b1", resp.Blocks[0].ID)
	assert.Equal(t, "b2", resp.Blocks[1].ID)
}

// Тест 6: удаление несуществующей блокировки
func TestBlocks_Delete_NotFound(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("Delete", ctx, "missing").Return(blockRepo.ErrBlockNotFound).Once()

	err := svc.Delete(ctx, "missing")

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

// Тест 7: успешное удаление
func TestBlocks_Delete_Success(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("Delete", ctx, "b1").Return(nil).Once()

	err := svc.Delete(ctx, "b1")

	assert.NoError(t, err)
}

// Тест 8: ошибка репозитория
func TestBlocks_List_RepoError(t *testing.T) {
	repo := &MockBlockRepository{}
	svc := NewService(repo, noopLogger{})

	ctx := context.Background()
	repo.On("List", ctx).Return(nil, errors.New("db down")).Once()

	_, err := svc.List(ctx)

	assert.ErrorIs(t, err, ErrInternal)
}
