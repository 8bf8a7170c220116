package reservation

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

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь в статусе pending
// ID генерируется на стороне хранилища (uuid), таймстемпы выставляются базой
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	res.ID = uuid.NewString()
	res.Status = domain.StatusPending

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"date",
			"field",
			"time_slot",
			"customer_name",
			"status",
			"payment_proof_url",
			"payment_proof_name",
		).
		Values(
			res.ID,
			res.Date,
			res.Field,
			string(res.TimeSlot),
			res.CustomerName,
			string(res.Status),
			res.PaymentProofURL,
			res.PaymentProofName,
		).
		Suffix("RETURNING submitted_at, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var submittedAt, createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&submittedAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.SubmittedAt = submittedAt.Time
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListAll получает все брони, новые первыми
// Опционально фильтрует по статусу (pending-фильтр захватывает legacy-алиас)
func (r *Repository) ListAll(ctx context.Context, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusFilterValues(*status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListByTuple получает брони для кортежа (date, field, timeSlot) с указанными
// статусами, старые первыми (порядок подачи).
// Внутри транзакции выборка блокируется (FOR UPDATE) - это точка сериализации
// каскадного отклонения при одобрении
func (r *Repository) ListByTuple(ctx context.Context, date, field, timeSlot string, statuses []string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{
			"date":      date,
			"field":     field,
			"time_slot": timeSlot,
		}).
		OrderBy("created_at ASC")

	if len(statuses) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTuple - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTuple - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListPending получает все ожидающие решения брони (включая legacy-алиас статуса)
// Используется expiry sweeper'ом; порядок не важен, но фиксируем его для стабильности
func (r *Repository) ListPending(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"status": domain.PendingStatusValues()}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус брони
// updated_at выставляется базой; admin_note записывается только если передана
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus, note *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if note != nil {
		updateBuilder = updateBuilder.Set("admin_note", *note)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// RejectBatch отклоняет все указанные брони одним запросом
// Один UPDATE = одна атомарная запись: частичных отклонений не бывает.
// Затрагиваются только строки, всё ещё ожидающие решения, - терминальные
// статусы никогда не перезаписываются
func (r *Repository) RejectBatch(ctx context.Context, ids []string, note string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(domain.StatusRejected)).
		Set("admin_note", note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": domain.PendingStatusValues()}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: RejectBatch - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: RejectBatch - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: RejectBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// selectReservations возвращает SELECT-билдер со стандартным набором колонок
func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"date",
		"field",
		"time_slot",
		"customer_name",
		"status",
		"payment_proof_url",
		"payment_proof_name",
		"admin_note",
		"submitted_at",
		"created_at",
		"updated_at",
	).From("reservations")
}

// statusFilterValues разворачивает канонический статус в набор хранимых значений
// (pending матчит и legacy-алиас)
func statusFilterValues(status domain.ReservationStatus) []string {
	if status == domain.StatusPending {
		return domain.PendingStatusValues()
	}
	return []string{string(status)}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в доменную модель
// Статус нормализуется на границе хранилища: legacy-алиас наружу не выходит
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var rawStatus string
	var timeSlot string
	var submittedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Date,
		&res.Field,
		&timeSlot,
		&res.CustomerName,
		&rawStatus,
		&res.PaymentProofURL,
		&res.PaymentProofName,
		&res.AdminNote,
		&submittedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.TimeSlot = domain.TimeSlot(timeSlot)
	res.Status = domain.NormalizeStatus(rawStatus)
	res.SubmittedAt = submittedAt.Time
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
