package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/models"
	"github.com/stabilis-labs/tes_engine/internal/utils/mapping"
)

type PgxAdjustmentRepository struct {
	BaseRepository
}

// newPgxAdjustmentRepository creates a new repository for adjustment records.
func newPgxAdjustmentRepository(pool *pgxpool.Pool) ports.AdjustmentRepository {
	return &PgxAdjustmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ ports.AdjustmentRepository = (*PgxAdjustmentRepository)(nil)

const adjustmentColumns = `
	adjustment_id, height, currency_code, price, base_unit, outcome,
	delta_magnitude, stabilization_amount, market_maker_amount,
	unallocated_amount, reason, created_at`

// SaveAdjustment inserts one adjustment record. Records are append-only audit data.
func (r *PgxAdjustmentRepository) SaveAdjustment(ctx context.Context, record domain.AdjustmentRecord) error {
	modelAdj := mapping.ToModelAdjustment(record)

	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAdj.AdjustmentID,
		modelAdj.Height,
		modelAdj.CurrencyCode,
		modelAdj.Price,
		modelAdj.BaseUnit,
		modelAdj.Outcome,
		modelAdj.DeltaMagnitude,
		modelAdj.StabilizationAmount,
		modelAdj.MarketMakerAmount,
		modelAdj.UnallocatedAmount,
		modelAdj.Reason,
		modelAdj.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save adjustment %s: %w", modelAdj.AdjustmentID, err)
	}
	return nil
}

// ListAdjustments retrieves the most recent adjustment records across all currencies.
func (r *PgxAdjustmentRepository) ListAdjustments(ctx context.Context, limit int) ([]domain.AdjustmentRecord, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		ORDER BY height DESC, created_at DESC
		LIMIT $1;
	`
	return r.collectAdjustments(ctx, query, limit)
}

// ListAdjustmentsByCurrency retrieves the most recent records for one currency.
func (r *PgxAdjustmentRepository) ListAdjustmentsByCurrency(ctx context.Context, currencyID domain.CurrencyID, limit int) ([]domain.AdjustmentRecord, error) {
	query := `
		SELECT ` + adjustmentColumns + `
		FROM adjustments
		WHERE currency_code = $1
		ORDER BY height DESC, created_at DESC
		LIMIT $2;
	`
	return r.collectAdjustments(ctx, query, string(currencyID), limit)
}

func (r *PgxAdjustmentRepository) collectAdjustments(ctx context.Context, query string, args ...any) ([]domain.AdjustmentRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query adjustments: %w", err)
	}
	defer rows.Close()

	modelAdjs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Adjustment, error) {
		var adj models.Adjustment
		err := row.Scan(
			&adj.AdjustmentID,
			&adj.Height,
			&adj.CurrencyCode,
			&adj.Price,
			&adj.BaseUnit,
			&adj.Outcome,
			&adj.DeltaMagnitude,
			&adj.StabilizationAmount,
			&adj.MarketMakerAmount,
			&adj.UnallocatedAmount,
			&adj.Reason,
			&adj.CreatedAt,
		)
		return adj, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect adjustment rows: %w", err)
	}

	records := make([]domain.AdjustmentRecord, len(modelAdjs))
	for i, modelAdj := range modelAdjs {
		records[i] = mapping.ToDomainAdjustment(modelAdj)
	}
	return records, nil
}
