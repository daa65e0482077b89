package payment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/psqlbuilder"
)

// CreateProof создает чек об оплате для платежа
func (r *Repository) CreateProof(ctx context.Context, proof *domain.PaymentProof) (*domain.PaymentProof, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_proofs").
		Columns(
			"payment_id",
			"admin_id",
			"image_url",
			"status",
		).
		Values(
			proof.PaymentID,
			proof.AdminID,
			proof.ImageURL,
			proof.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateProof - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&proof.ID, &createdAt)

	if err != nil {
		return nil, fmt.Errorf("%w: CreateProof - execute insert: %v", ErrExecQuery, err)
	}

	proof.CreatedAt = createdAt.Time

	return proof, nil
}

// GetProofByID получает чек по ID
func (r *Repository) GetProofByID(ctx context.Context, id int64) (*domain.PaymentProof, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"payment_id",
		"admin_id",
		"image_url",
		"status",
		"review_comment",
		"reviewed_at",
		"created_at",
	).
		From("payment_proofs").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProofByID - build select query: %v", ErrBuildQuery, err)
	}

	proof, err := scanProof(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProofNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProofByID - scan proof: %v", ErrScanRow, err)
	}

	return proof, nil
}

// ExistsPendingProof проверяет, есть ли у платежа непроверенный чек
func (r *Repository) ExistsPendingProof(ctx context.Context, paymentID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(1)").
		From("payment_proofs").
		Where(squirrel.Eq{
			"payment_id": paymentID,
			"status":     domain.PaymentPending,
		}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsPendingProof - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsPendingProof - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// UpdateProofStatus обновляет статус чека после проверки суперадмином
func (r *Repository) UpdateProofStatus(ctx context.Context, id int64, status domain.PaymentStatus, comment *string, reviewedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_proofs").
		Set("status", status).
		Set("review_comment", comment).
		Set("reviewed_at", reviewedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProofStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProofStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProofStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProofNotFound
	}

	return nil
}

// ListProofs получает список чеков с информацией о платеже и лавадеро
func (r *Repository) ListProofs(ctx context.Context, filter domain.PaymentProofsFilter) ([]*domain.PaymentProofInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"pp.id",
		"pp.payment_id",
		"pp.admin_id",
		"pp.image_url",
		"pp.status",
		"pp.review_comment",
		"pp.reviewed_at",
		"pp.created_at",
		"mp.amount",
		"mp.period",
		"mp.station_id",
		"s.name",
	).
		From("payment_proofs pp").
		Join("monthly_payments mp ON mp.id = pp.payment_id").
		Join("stations s ON s.id = mp.station_id").
		OrderBy("pp.created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"pp.status": *filter.Status})
	}
	if filter.AdminID != nil {
		builder = builder.Where(squirrel.Eq{"pp.admin_id": *filter.AdminID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProofs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProofs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var proofs []*domain.PaymentProofInfo
	for rows.Next() {
		var info domain.PaymentProofInfo
		var comment sql.NullString
		var reviewedAt sql.NullTime
		var createdAt sql.NullTime

		err = rows.Scan(
			&info.ID,
			&info.PaymentID,
			&info.AdminID,
			&info.ImageURL,
			&info.Status,
			&comment,
			&reviewedAt,
			&createdAt,
			&info.Amount,
			&info.Period,
			&info.StationID,
			&info.StationName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListProofs - scan proof: %v", ErrScanRow, err)
		}

		if comment.Valid {
			info.ReviewComment = &comment.String
		}
		if reviewedAt.Valid {
			info.ReviewedAt = &reviewedAt.Time
		}
		info.CreatedAt = createdAt.Time

		proofs = append(proofs, &info)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProofs - iterate rows: %v", ErrScanRow, err)
	}

	return proofs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProof(row rowScanner) (*domain.PaymentProof, error) {
	var proof domain.PaymentProof
	var comment sql.NullString
	var reviewedAt sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(
		&proof.ID,
		&proof.PaymentID,
		&proof.AdminID,
		&proof.ImageURL,
		&proof.Status,
		&comment,
		&reviewedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		proof.ReviewComment = &comment.String
	}
	if reviewedAt.Valid {
		proof.ReviewedAt = &reviewedAt.Time
	}
	proof.CreatedAt = createdAt.Time

	return &proof, nil
}
