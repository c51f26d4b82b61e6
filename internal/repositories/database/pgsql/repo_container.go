package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) *ports.RepositoryProvider {
	return &ports.RepositoryProvider{
		CurrencyRepo:   newPgxCurrencyRepository(dbPool),
		PriceRepo:      newPgxPriceRepository(dbPool),
		AdjustmentRepo: newPgxAdjustmentRepository(dbPool),
		LedgerRepo:     newPgxLedgerRepository(dbPool),
	}
}
