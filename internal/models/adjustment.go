package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment represents one persisted adjustment outcome row. Amounts are
// NUMERIC in the database and converted to uint64 at the mapping layer.
type Adjustment struct {
	AdjustmentID        string          `db:"adjustment_id"` // Primary Key (UUID)
	Height              int64           `db:"height"`
	CurrencyCode        string          `db:"currency_code"`
	Price               decimal.Decimal `db:"price"`
	BaseUnit            decimal.Decimal `db:"base_unit"`
	Outcome             string          `db:"outcome"`
	DeltaMagnitude      decimal.Decimal `db:"delta_magnitude"`
	StabilizationAmount decimal.Decimal `db:"stabilization_amount"`
	MarketMakerAmount   decimal.Decimal `db:"market_maker_amount"`
	UnallocatedAmount   decimal.Decimal `db:"unallocated_amount"`
	Reason              string          `db:"reason"`
	CreatedAt           time.Time       `db:"created_at"`
}
