package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с ежемесячными платежами и чеками об оплате
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreatePayment создает ежемесячный платеж
func (r *Repository) CreatePayment(ctx context.Context, p *domain.MonthlyPayment) (*domain.MonthlyPayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("monthly_payments").
		Columns(
			"admin_id",
			"station_id",
			"amount",
			"period",
			"status",
			"due_at",
		).
		Values(
			p.AdminID,
			p.StationID,
			p.Amount,
			p.Period,
			p.Status,
			p.DueAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePayment - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetPaymentByID получает платеж по ID
func (r *Repository) GetPaymentByID(ctx context.Context, id int64) (*domain.MonthlyPayment, error) {
	return r.getPayment(ctx, squirrel.Eq{"id": id})
}

// GetPendingByAdmin получает текущий неоплаченный платеж админа (последний по сроку)
func (r *Repository) GetPendingByAdmin(ctx context.Context, adminID int64) (*domain.MonthlyPayment, error) {
	return r.getPayment(ctx, squirrel.Eq{"admin_id": adminID, "status": domain.PaymentPending})
}

// GetByAdminAndPeriod получает платеж админа за конкретный период
func (r *Repository) GetByAdminAndPeriod(ctx context.Context, adminID int64, period string) (*domain.MonthlyPayment, error) {
	return r.getPayment(ctx, squirrel.Eq{"admin_id": adminID, "period": period})
}

// GetPendingByAdminAndPeriod получает PENDIENTE платеж админа за конкретный период
func (r *Repository) GetPendingByAdminAndPeriod(ctx context.Context, adminID int64, period string) (*domain.MonthlyPayment, error) {
	return r.getPayment(ctx, squirrel.Eq{
		"admin_id": adminID,
		"period":   period,
		"status":   domain.PaymentPending,
	})
}

func (r *Repository) getPayment(ctx context.Context, where squirrel.Eq) (*domain.MonthlyPayment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"admin_id",
		"station_id",
		"amount",
		"period",
		"status",
		"due_at",
		"created_at",
	).
		From("monthly_payments").
		Where(where).
		OrderBy("due_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getPayment - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.MonthlyPayment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.AdminID,
		&p.StationID,
		&p.Amount,
		&p.Period,
		&p.Status,
		&p.DueAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getPayment - scan payment: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}

// UpdatePaymentStatus обновляет статус платежа
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("monthly_payments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
