package list_reservations

import (
	"context"

	"github.com/m04kA/HalisahaBookingService/internal/service/reservations/models"
)

type ReservationService interface {
	ListAll(ctx context.Context, statusFilter *string) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
