package check_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// UseCase use case проверки доступности слота
// Вердикты в порядке приоритета (первый сработавший побеждает):
// blocked -> occupied -> contested -> free
type UseCase struct {
	blockRepo       BlockRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:       blockRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute вычисляет вердикт для кортежа (date, field, timeSlot)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Блокировки владельца имеют высший приоритет
	blocks, err := uc.blockRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	// Блокировки проверяются в порядке создания: при пересечении нескольких
	// побеждает причина самой старой (порядок гарантирует репозиторий)
	for _, blk := range blocks {
		if blk.Applies(req.Date, req.Field, req.TimeSlot) {
			uc.logger.Info("CheckAvailability: (%s, %s, %s) blocked by %s",
				req.Date, req.Field, req.TimeSlot, blk.ID)
			return &Response{
				Verdict:     VerdictBlocked,
				Selectable:  false,
				BlockReason: blk.Reason,
			}, nil
		}
	}

	// 3. Смотрим существующие брони кортежа: одобренные и ожидающие
	statuses := append(domain.PendingStatusValues(), string(domain.StatusApproved))
	reservations, err := uc.reservationRepo.ListByTuple(ctx, req.Date, req.Field, req.TimeSlot, statuses)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// Одобренная бронь закрывает слот; берём первую по времени подачи
	for _, res := range reservations {
		if res.Status == domain.StatusApproved {
			return &Response{
				Verdict:      VerdictOccupied,
				Selectable:   false,
				CustomerName: res.CustomerName,
			}, nil
		}
	}

	// Pending-бронь не закрывает слот: первый отправивший ничего не резервирует,
	// слот закрепляется только одобрением. Показываем предупреждение
	for _, res := range reservations {
		if res.IsPending() {
			return &Response{
				Verdict:      VerdictContested,
				Selectable:   true,
				CustomerName: res.CustomerName,
			}, nil
		}
	}

	// 4. Ничего не нашли - слот свободен
	return &Response{
		Verdict:    VerdictFree,
		Selectable: true,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Field) == "" {
		return fmt.Errorf("%w: field is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.TimeSlot) == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	return nil
}
