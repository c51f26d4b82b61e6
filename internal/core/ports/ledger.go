package ports

import (
	"context"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// Ledger is the narrow contract the engine needs from the currency-issuance
// backend. Total issuance is owned exclusively by the ledger; the engine reads
// it once per cycle and never caches it across calls. Mutation failures (e.g.
// insufficient reserved balance on a burn) are adjustment-cycle failures for
// that currency only.
type Ledger interface {
	// TotalIssuance returns the sum of all balances of the currency.
	TotalIssuance(ctx context.Context, currencyID domain.CurrencyID) (uint64, error)
	// ReservedBalance returns the amount the account has reserved in the
	// currency, i.e. what a contraction may draw from it.
	ReservedBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error)
	// Mint credits the account and raises total issuance atomically.
	Mint(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
	// Burn debits the account's reserved balance and lowers total issuance
	// atomically. It fails with apperrors.ErrLedgerRejected when the reserved
	// balance is insufficient.
	Burn(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
}
