package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	blockRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/block"
	"github.com/m04kA/HalisahaBookingService/internal/service/blocks/models"
)

// Service сервис управления блокировками полей
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Create создает новую блокировку после валидации входных данных
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: creating block %s..%s field=%s slot=%s", req.StartDate, req.EndDate, req.Field, req.TimeSlot)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid block request: %v", err)
		return nil, err
	}

	blk, err := s.blockRepo.Create(ctx, req.ToDomainBlock())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created block id=%s", blk.ID)
	return models.FromDomainBlock(blk), nil
}

// List получает все блокировки в порядке создания
func (s *Service) List(ctx context.Context) (*models.BlockListResponse, error) {
	list, err := s.blockRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(list), nil
}

// Delete удаляет блокировку по ID
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting block id=%s", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted block id=%s", id)
	return nil
}

func validateCreateRequest(req *models.CreateBlockRequest) error {
	if req.Reason == "" {
		return fmt.Errorf("%w: reason is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.StartDate); err != nil {
		return fmt.Errorf("%w: startDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.EndDate); err != nil {
		return fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if req.StartDate > req.EndDate {
		return fmt.Errorf("%w: startDate must not be after endDate", ErrInvalidInput)
	}
	if req.Field != domain.Wildcard && !domain.IsValidField(req.Field) {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, req.Field)
	}
	if req.TimeSlot != domain.Wildcard && !domain.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}
	return nil
}
