package holiday

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий для работы с нерабочими днями лавадеро
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория нерабочих дней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByStation получает все нерабочие дни лавадеро, отсортированные по дате
func (r *Repository) ListByStation(ctx context.Context, stationID int64) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"station_id",
		"date",
		"reason",
		"created_at",
	).
		From("holidays").
		Where(squirrel.Eq{"station_id": stationID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)

	for rows.Next() {
		var h domain.Holiday
		var createdAt sql.NullTime

		if err := rows.Scan(&h.ID, &h.StationID, &h.Date, &h.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByStation - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByStation - rows error: %v", ErrScanRow, err)
	}

	return holidays, nil
}

// Create добавляет нерабочий день
// На пару (station_id, date) стоит уникальный индекс
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("station_id", "date", "reason").
		Values(h.StationID, h.Date, h.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateHoliday
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time

	return h, nil
}

// Delete удаляет нерабочий день лавадеро
// station_id в условии защищает от удаления чужих записей
func (r *Repository) Delete(ctx context.Context, id int64, stationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").
		Where(squirrel.Eq{"id": id, "station_id": stationID}).
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
		return ErrHolidayNotFound
	}

	return nil
}
