package create_reservation

import (
	"context"
	"fmt"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	"github.com/m04kA/HalisahaBookingService/internal/infra/notify"
)

// UseCase use case для создания брони
// Создание - простая вставка без координации: конфликт нескольких pending-броней
// на один слот разрешается позже, при одобрении (optimistic concurrency)
type UseCase struct {
	reservationRepo ReservationRepository
	producer        NotificationProducer
	topic           string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// producer может быть nil - тогда уведомления не отправляются
func NewUseCase(
	reservationRepo ReservationRepository,
	producer NotificationProducer,
	topic string,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		producer:        producer,
		topic:           topic,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, field=%s, slot=%s, customer=%q",
		req.Date, req.Field, req.TimeSlot, req.CustomerName)

	// 1. Валидация входных данных (до любой записи)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем бронь в статусе pending
	res := &domain.Reservation{
		Date:             req.Date,
		Field:            req.Field,
		TimeSlot:         domain.TimeSlot(req.TimeSlot),
		CustomerName:     req.CustomerName,
		PaymentProofURL:  req.PaymentProofURL,
		PaymentProofName: req.PaymentProofName,
	}

	created, err := uc.reservationRepo.Create(ctx, res)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)

	// 3. Уведомляем администратора (fire-and-forget после успешной записи)
	uc.notifyAdmin(ctx, created)

	return &Response{
		ID:               created.ID,
		Date:             created.Date,
		Field:            created.Field,
		TimeSlot:         created.TimeSlot.String(),
		CustomerName:     created.CustomerName,
		Status:           string(created.Status),
		PaymentProofURL:  created.PaymentProofURL,
		PaymentProofName: created.PaymentProofName,
		SubmittedAt:      created.SubmittedAt,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}

// notifyAdmin публикует событие о новой брони
// Ошибка публикации логируется и глотается: уведомление не должно
// ронять или откатывать уже созданную бронь
func (uc *UseCase) notifyAdmin(ctx context.Context, res *domain.Reservation) {
	if uc.producer == nil || uc.topic == "" {
		return
	}

	event := notify.ReservationEvent{
		Type:          notify.EventReservationCreated,
		ReservationID: res.ID,
		CustomerName:  res.CustomerName,
		Date:          res.Date,
		Field:         res.Field,
		TimeSlot:      res.TimeSlot.String(),
	}

	if err := uc.producer.Publish(ctx, uc.topic, res.ID, event); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish notification for id=%s: %v", res.ID, err)
	}
}
