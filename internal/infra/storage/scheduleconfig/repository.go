package scheduleconfig

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

// Repository репозиторий для работы с конфигурацией расписания лавадеро
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStationID получает конфигурацию лавадеро
func (r *Repository) GetByStationID(ctx context.Context, stationID int64) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"station_id",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"working_weekdays",
		"bank_alias",
		"base_price",
		"serves_motorcycles",
		"serves_cars",
		"serves_vans",
		"price_motorcycle",
		"price_car",
		"price_van",
		"latitude",
		"longitude",
		"full_address",
		"is_open_now",
		"created_at",
		"updated_at",
	).
		From("schedule_configs").
		Where(squirrel.Eq{"station_id": stationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationID - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.StationID,
		&config.OpenTime,
		&config.CloseTime,
		&config.SlotDurationMinutes,
		&weekdays,
		&config.BankAlias,
		&config.BasePrice,
		&config.ServesMotorcycles,
		&config.ServesCars,
		&config.ServesVans,
		&config.PriceMotorcycle,
		&config.PriceCar,
		&config.PriceVan,
		&config.Latitude,
		&config.Longitude,
		&config.FullAddress,
		&config.IsOpenNow,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStationID - scan config: %v", ErrScanRow, err)
	}

	config.WorkingWeekdays = fromInt64Array(weekdays)
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или полностью обновляет конфигурацию лавадеро
// Конфигурация уникальна по station_id
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_configs").
		Columns(
			"station_id",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"working_weekdays",
			"bank_alias",
			"base_price",
			"serves_motorcycles",
			"serves_cars",
			"serves_vans",
			"price_motorcycle",
			"price_car",
			"price_van",
			"latitude",
			"longitude",
			"full_address",
			"is_open_now",
		).
		Values(
			config.StationID,
			config.OpenTime,
			config.CloseTime,
			config.SlotDurationMinutes,
			toInt64Array(config.WorkingWeekdays),
			config.BankAlias,
			config.BasePrice,
			config.ServesMotorcycles,
			config.ServesCars,
			config.ServesVans,
			config.PriceMotorcycle,
			config.PriceCar,
			config.PriceVan,
			config.Latitude,
			config.Longitude,
			config.FullAddress,
			config.IsOpenNow,
		).
		Suffix(`ON CONFLICT (station_id) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			working_weekdays = EXCLUDED.working_weekdays,
			bank_alias = EXCLUDED.bank_alias,
			base_price = EXCLUDED.base_price,
			serves_motorcycles = EXCLUDED.serves_motorcycles,
			serves_cars = EXCLUDED.serves_cars,
			serves_vans = EXCLUDED.serves_vans,
			price_motorcycle = EXCLUDED.price_motorcycle,
			price_car = EXCLUDED.price_car,
			price_van = EXCLUDED.price_van,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			full_address = EXCLUDED.full_address,
			updated_at = NOW()
		RETURNING id, is_open_now, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.IsOpenNow,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// SetOpenNow переключает флаг "открыто сейчас"
func (r *Repository) SetOpenNow(ctx context.Context, stationID int64, open bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedule_configs").
		Set("is_open_now", open).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"station_id": stationID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOpenNow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOpenNow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOpenNow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

func toInt64Array(values []int) pq.Int64Array {
	result := make(pq.Int64Array, len(values))
	for i, v := range values {
		result[i] = int64(v)
	}
	return result
}

func fromInt64Array(values pq.Int64Array) []int {
	result := make([]int, len(values))
	for i, v := range values {
		result[i] = int(v)
	}
	return result
}
