package ports

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// PriceOracle supplies the current market price for a tracked currency.
// No staleness guarantee is made to the engine: a missing or zero observation
// must surface to the caller as an invalid price, never as a default of zero
// adjustment.
type PriceOracle interface {
	GetPrice(ctx context.Context, currencyID domain.CurrencyID) (decimal.Decimal, error)
}
