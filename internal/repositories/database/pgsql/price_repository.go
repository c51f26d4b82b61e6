package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/models"
	"github.com/stabilis-labs/tes_engine/internal/utils/mapping"
)

type PgxPriceRepository struct {
	BaseRepository
}

// newPgxPriceRepository creates a new repository for price observations.
func newPgxPriceRepository(pool *pgxpool.Pool) ports.PriceRepository {
	return &PgxPriceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ ports.PriceRepository = (*PgxPriceRepository)(nil)

// SaveObservation inserts one price observation. Observations are append-only.
func (r *PgxPriceRepository) SaveObservation(ctx context.Context, observation domain.PriceObservation) error {
	modelObs := mapping.ToModelPriceObservation(observation)

	query := `
		INSERT INTO price_observations (observation_id, currency_code, price, source, observed_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelObs.ObservationID,
		modelObs.CurrencyCode,
		modelObs.Price,
		modelObs.Source,
		modelObs.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save price observation for %s: %w", modelObs.CurrencyCode, err)
	}
	return nil
}

// FindLatestObservation retrieves the most recent observation for a currency.
func (r *PgxPriceRepository) FindLatestObservation(ctx context.Context, currencyID domain.CurrencyID) (*domain.PriceObservation, error) {
	query := `
		SELECT observation_id, currency_code, price, source, observed_at
		FROM price_observations
		WHERE currency_code = $1
		ORDER BY observed_at DESC, observation_id DESC
		LIMIT 1;
	`
	var modelObs models.PriceObservation
	err := r.Pool.QueryRow(ctx, query, string(currencyID)).Scan(
		&modelObs.ObservationID,
		&modelObs.CurrencyCode,
		&modelObs.Price,
		&modelObs.Source,
		&modelObs.ObservedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest observation for %s: %w", currencyID, err)
	}

	domainObs := mapping.ToDomainPriceObservation(modelObs)
	return &domainObs, nil
}
