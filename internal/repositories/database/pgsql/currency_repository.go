package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/models"
	"github.com/stabilis-labs/tes_engine/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for tracked-currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) ports.CurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ ports.CurrencyRepository = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a tracked currency (seeded from config at startup).
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.TrackedCurrency) error {
	modelCurr := mapping.ToModelCurrency(currency)
	now := time.Now().UTC()

	query := `
		INSERT INTO currencies (currency_code, name, base_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (currency_code) DO UPDATE SET
			name = EXCLUDED.name,
			base_unit = EXCLUDED.base_unit,
			updated_at = EXCLUDED.updated_at;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.BaseUnit,
		now,
		now,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByID retrieves a tracked currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID domain.CurrencyID) (*domain.TrackedCurrency, error) {
	query := `
		SELECT currency_code, name, base_unit, created_at, updated_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, string(currencyID)).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.BaseUnit,
		&modelCurr.CreatedAt,
		&modelCurr.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %s: %w", currencyID, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all tracked currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.TrackedCurrency, error) {
	query := `
		SELECT currency_code, name, base_unit, created_at, updated_at
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.BaseUnit,
			&currency.CreatedAt,
			&currency.UpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rows: %w", err)
	}

	currencies := make([]domain.TrackedCurrency, len(modelCurrencies))
	for i, modelCurr := range modelCurrencies {
		currencies[i] = mapping.ToDomainCurrency(modelCurr)
	}
	return currencies, nil
}
