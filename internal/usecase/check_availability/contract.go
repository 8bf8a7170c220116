package check_availability

import (
	"context"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
// List обязан возвращать блокировки в порядке создания - от этого зависит,
// какая причина побеждает при пересечении нескольких блокировок
type BlockRepository interface {
	List(ctx context.Context) ([]*domain.Block, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	ListByTuple(ctx context.Context, date, field, timeSlot string, statuses []string) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
