package platformconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-LavaderoService/internal/domain"
	"github.com/m04kA/SMC-LavaderoService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LavaderoService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (может быть *dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации платформы (единственная строка)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации платформы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию платформы
func (r *Repository) Get(ctx context.Context) (*domain.PlatformConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"bank_alias",
		"monthly_price",
		"created_at",
		"updated_at",
	).
		From("platform_config").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.PlatformConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.BankAlias,
		&cfg.MonthlyPrice,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	return &cfg, nil
}

// Upsert создает или обновляет конфигурацию платформы
func (r *Repository) Upsert(ctx context.Context, cfg *domain.PlatformConfig) (*domain.PlatformConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("platform_config").
		Columns("id", "bank_alias", "monthly_price").
		Values(1, cfg.BankAlias, cfg.MonthlyPrice).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			bank_alias = EXCLUDED.bank_alias,
			monthly_price = EXCLUDED.monthly_price,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return cfg, nil
}
