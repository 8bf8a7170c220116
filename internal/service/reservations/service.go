package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	reservationRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/HalisahaBookingService/internal/service/reservations/models"
)

// Service сервис простых операций над бронями (чтение и прямое отклонение)
// Одобрение с каскадом живёт отдельно, в usecase approve_reservation
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// ListAll получает все брони, новые первыми
// Опционально фильтрует по статусу (для вкладок админ-панели)
func (s *Service) ListAll(ctx context.Context, statusFilter *string) (*models.ReservationListResponse, error) {
	s.logger.Info("ListAll: fetching reservations, status=%v", statusFilter)

	var domainStatus *domain.ReservationStatus
	if statusFilter != nil {
		status, err := models.ToDomainReservationStatus(*statusFilter)
		if err != nil {
			s.logger.Warn("ListAll: invalid status filter=%q", *statusFilter)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	list, err := s.reservationRepo.ListAll(ctx, domainStatus)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d reservations", len(list))
	return models.FromDomainReservationList(list), nil
}

// Reject отклоняет бронь без каскада
// Повторное отклонение уже отклонённой брони - no-op (идемпотентность ретраев)
func (s *Service) Reject(ctx context.Context, id string) error {
	s.logger.Info("Reject: rejecting reservation id=%s", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Reject: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Reject: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	if res.Status == domain.StatusRejected {
		s.logger.Info("Reject: reservation id=%s is already rejected, nothing to do", id)
		return nil
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusRejected, nil); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Reject: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reject: successfully rejected reservation id=%s", id)
	return nil
}
