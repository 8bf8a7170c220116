package expire_reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// UseCase use case авто-отклонения просроченных pending-броней
// Бронь просрочена, если прошло grace-время (по умолчанию 24 часа) после
// окончания её слота, а решение администратора так и не принято.
// Usecase stateless: каждый прогон заново сканирует все pending-брони,
// поэтому безопасен к рестартам и конкурентным запускам - движение
// статусов только одностороннее (pending -> rejected)
type UseCase struct {
	reservationRepo ReservationRepository
	grace           time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// Response результат одного прогона
type Response struct {
	RejectedCount int64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	grace time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		grace:           grace,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет один прогон: находит просроченные pending-брони и
// отклоняет их все одним атомарным запросом
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Забираем все ожидающие решения брони (включая legacy-алиас статуса)
	pending, err := uc.reservationRepo.ListPending(ctx)
	if err != nil {
		uc.logger.Error("ExpireReservations: failed to list pending reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list pending reservations: %v", ErrInternal, err)
	}

	if len(pending) == 0 {
		return &Response{RejectedCount: 0}, nil
	}

	// 2. Считаем дедлайн каждой брони: конец слота + grace
	dueIDs := make([]string, 0)
	for _, res := range pending {
		deadline, err := res.SlotDeadline(uc.grace, now.Location())
		if err != nil {
			// Бронь с нечитаемой датой или слотом не трогаем, только жалуемся
			uc.logger.Warn("ExpireReservations: skipping id=%s with malformed date/slot: %v", res.ID, err)
			continue
		}

		if !now.Before(deadline) {
			uc.logger.Info("ExpireReservations: rejecting id=%s (%s %s, customer=%q) - deadline %s passed",
				res.ID, res.Date, res.TimeSlot, res.CustomerName, deadline.Format(time.RFC3339))
			dueIDs = append(dueIDs, res.ID)
		}
	}

	if len(dueIDs) == 0 {
		return &Response{RejectedCount: 0}, nil
	}

	// 3. Отклоняем всё просроченное одним запросом - либо целиком, либо никак
	rejected, err := uc.reservationRepo.RejectBatch(ctx, dueIDs, domain.NoteAutoRejectedExpired)
	if err != nil {
		uc.logger.Error("ExpireReservations: batch reject failed: %v", err)
		return nil, fmt.Errorf("%w: batch reject failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ExpireReservations: auto-rejected %d stale reservation(s)", rejected)
	return &Response{RejectedCount: rejected}, nil
}
