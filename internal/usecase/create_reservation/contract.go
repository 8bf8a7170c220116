package create_reservation

import (
	"context"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// NotificationProducer интерфейс отправки событий о бронях
// Отправка best-effort: ошибка публикации не должна влиять на результат создания
type NotificationProducer interface {
	Publish(ctx context.Context, topic, key string, payload interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
