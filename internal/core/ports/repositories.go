package ports

import (
	"context"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// Note: Context is included on every method for cancellation/timeouts.

// CurrencyRepository persists the tracked-currency set. Currencies are seeded
// from configuration at startup and immutable afterwards.
type CurrencyRepository interface {
	SaveCurrency(ctx context.Context, currency domain.TrackedCurrency) error
	FindCurrencyByID(ctx context.Context, currencyID domain.CurrencyID) (*domain.TrackedCurrency, error)
	ListCurrencies(ctx context.Context) ([]domain.TrackedCurrency, error)
}

// PriceRepository persists market price observations and serves the latest
// one per currency to the oracle adapter.
type PriceRepository interface {
	SaveObservation(ctx context.Context, observation domain.PriceObservation) error
	FindLatestObservation(ctx context.Context, currencyID domain.CurrencyID) (*domain.PriceObservation, error)
}

// AdjustmentRepository persists per-currency adjustment outcomes for audit.
type AdjustmentRepository interface {
	SaveAdjustment(ctx context.Context, record domain.AdjustmentRecord) error
	ListAdjustments(ctx context.Context, limit int) ([]domain.AdjustmentRecord, error)
	ListAdjustmentsByCurrency(ctx context.Context, currencyID domain.CurrencyID, limit int) ([]domain.AdjustmentRecord, error)
}

// LedgerRepository is the full ledger backend surface: the engine-facing
// Ledger contract plus the account operations exposed over the API so market
// makers can fund future contractions.
type LedgerRepository interface {
	Ledger
	// FreeBalance returns the spendable (unreserved) balance of the account.
	FreeBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error)
	// Reserve moves amount from the account's free balance to its reserved
	// balance. Fails with apperrors.ErrLedgerRejected on insufficient funds.
	Reserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
	// Unreserve moves amount back from reserved to free, capped at the
	// reserved balance.
	Unreserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
}
