package approve_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	reservationRepo "github.com/m04kA/HalisahaBookingService/internal/infra/storage/reservation"
)

// UseCase use case одобрения брони с каскадным отклонением конкурентов
// Единственная точка сериализации для кортежа (date, field, timeSlot):
// вся операция выполняется в одной SERIALIZABLE-транзакции, поэтому два
// конкурентных одобрения одного кортежа не могут выиграть оба
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute одобряет бронь и каскадом отклоняет всех pending-конкурентов кортежа
// Инвариант на выходе: для кортежа не больше одной одобренной брони,
// и ни одной pending-брони рядом с одобренной.
// Повторное одобрение уже одобренной брони - no-op (ретраи безопасны)
func (uc *UseCase) Execute(ctx context.Context, id string) (*Response, error) {
	uc.logger.Info("ApproveReservation: approving id=%s", id)

	var (
		target          *domain.Reservation
		cascadeRejected int64
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем целевую бронь с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
		}

		// Отклонённая бронь терминальна: её уже вытеснила другая бронь
		// этого же кортежа (или sweeper). Одобрять нечего - конфликт
		if res.Status == domain.StatusRejected {
			return ErrAlreadyRejected
		}

		// 2. Переводим цель в approved (no-op, если уже одобрена -
		// тогда остаётся только дочистить pending-конкурентов)
		if res.Status != domain.StatusApproved {
			if err := uc.reservationRepo.UpdateStatus(txCtx, id, domain.StatusApproved, nil); err != nil {
				return fmt.Errorf("%w: failed to approve reservation: %v", ErrInternal, err)
			}
		}

		// 3. В той же транзакции находим всех pending-конкурентов кортежа
		// (включая legacy-алиас статуса) и отклоняем их одним запросом
		siblings, err := uc.reservationRepo.ListByTuple(
			txCtx, res.Date, res.Field, res.TimeSlot.String(), domain.PendingStatusValues(),
		)
		if err != nil {
			return fmt.Errorf("%w: failed to list conflicting reservations: %v", ErrInternal, err)
		}

		ids := make([]string, 0, len(siblings))
		for _, s := range siblings {
			if s.ID == id {
				continue
			}
			ids = append(ids, s.ID)
		}

		rejected, err := uc.reservationRepo.RejectBatch(txCtx, ids, domain.NoteSupersededByApproval)
		if err != nil {
			return fmt.Errorf("%w: failed to cascade-reject conflicting reservations: %v", ErrInternal, err)
		}

		target = res
		cascadeRejected = rejected
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrAlreadyRejected) {
			uc.logger.Warn("ApproveReservation: id=%s: %v", id, err)
		} else {
			uc.logger.Error("ApproveReservation: id=%s failed: %v", id, err)
		}
		return nil, err
	}

	uc.logger.Info("ApproveReservation: approved id=%s, cascade-rejected %d conflicting reservation(s)",
		id, cascadeRejected)

	return &Response{
		ID:              target.ID,
		Date:            target.Date,
		Field:           target.Field,
		TimeSlot:        target.TimeSlot.String(),
		Status:          string(domain.StatusApproved),
		CascadeRejected: cascadeRejected,
	}, nil
}
