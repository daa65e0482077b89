package station

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

// Repository репозиторий для работы с лавадеро
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лавадеро
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое лавадеро
/// На admin_id стоит уникальный индекс: один админ - одно лавадеро
func (r *Repository) Create(ctx context.Context, station *domain.Station) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stations").
		Columns(
			"name",
			"address",
			"description",
			"admin_id",
			"status",
			"expires_at",
			"is_active",
		).
		Values(
			station.Name,
			station.Address,
			station.Description,
			station.AdminID,
			station.Status,
			station.ExpiresAt,
			station.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&station.ID, &createdAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateStation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	station.CreatedAt = createdAt.Time

	return station, nil
}

// GetByID получает лавадеро по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByAdminID получает лавадеро по ID владельца
func (r *Repository) GetByAdminID(ctx context.Context, adminID int64) (*domain.Station, error) {
	return r.getOne(ctx, squirrel.Eq{"admin_id": adminID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectStations().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var station domain.Station
	var createdAt sql.NullTime
	var expiresAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&station.ID,
		&station.Name,
		&station.Address,
		&station.Description,
		&station.AdminID,
		&station.Status,
		&expiresAt,
		&station.IsActive,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan station: %v", ErrScanRow, err)
	}

	if expiresAt.Valid {
		station.ExpiresAt = &expiresAt.Time
	}
	station.CreatedAt = createdAt.Time

	return &station, nil
}

// List получает лавадеро по фильтру, отсортированные по дате создания (новые первыми)
func (r *Repository) List(ctx context.Context, filter domain.StationsFilter) ([]*domain.Station, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectStations().OrderBy("created_at DESC")

	if filter.OnlyOperative {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"status": domain.StatusActive}).
			Where(squirrel.Eq{"is_active": true})
	} else {
		if filter.Status != nil {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
		}
		if filter.OnlyActive {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
		}
	}

	if filter.AdminID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"admin_id": *filter.AdminID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stations := make([]*domain.Station, 0)

	for rows.Next() {
		var station domain.Station
		var createdAt sql.NullTime
		var expiresAt sql.NullTime

		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Address,
			&station.Description,
			&station.AdminID,
			&station.Status,
			&expiresAt,
			&station.IsActive,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if expiresAt.Valid {
			station.ExpiresAt = &expiresAt.Time
		}
		station.CreatedAt = createdAt.Time

		stations = append(stations, &station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return stations, nil
}

// UpdateStatus обновляет операционный статус лавадеро и окончание оплаченного периода
// expiresAt = nil сбрасывает срок действия (например, при деактивации)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.StationStatus, expiresAt *time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("stations").
		Set("status", status).
		Set("expires_at", expiresAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

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
		return ErrStationNotFound
	}

	return nil
}

// SetActive включает или выключает лавадеро (переключатель суперадмина)
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("stations").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStationNotFound
	}

	return nil
}

func selectStations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"address",
		"description",
		"admin_id",
		"status",
		"expires_at",
		"is_active",
		"created_at",
	).From("stations")
}
