package list_blocks

import (
	"context"

	"github.com/m04kA/HalisahaBookingService/internal/service/blocks/models"
)

type BlockService interface {
	List(ctx context.Context) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
