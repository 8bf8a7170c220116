package blocks

import (
	"context"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, blk *domain.Block) (*domain.Block, error)
	List(ctx context.Context) ([]*domain.Block, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
