package block

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/HalisahaBookingService/internal/domain"
	"github.com/m04kA/HalisahaBookingService/pkg/dbmetrics"
	"github.com/m04kA/HalisahaBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с блокировками (date range x field x slot)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку, возвращает её с проставленным ID и created_at
func (r *Repository) Create(ctx context.Context, blk *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blk.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert("blocks").
		Columns(
			"id",
			"start_date",
			"end_date",
			"field",
			"time_slot",
			"reason",
		).
		Values(
			blk.ID,
			blk.StartDate,
			blk.EndDate,
			blk.Field,
			blk.TimeSlot,
			blk.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time

	return blk, nil
}

// List получает все блокировки в порядке создания (created_at ASC, id ASC)
// Этот порядок - контракт: при пересечении нескольких блокировок побеждает
// причина самой старой (на это полагается check_availability)
func (r *Repository) List(ctx context.Context) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"start_date",
		"end_date",
		"field",
		"time_slot",
		"reason",
		"created_at",
	).
		From("blocks").
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var blk domain.Block
		var createdAt sql.NullTime

		err := rows.Scan(
			&blk.ID,
			&blk.StartDate,
			&blk.EndDate,
			&blk.Field,
			&blk.TimeSlot,
			&blk.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		blk.CreatedAt = createdAt.Time
		blocks = append(blocks, &blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку
// Изменение блокировки не поддерживается: меняют через удаление и пересоздание
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
