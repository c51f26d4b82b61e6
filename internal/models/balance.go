package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance represents one account's holdings in one currency. Amounts are
// stored as NUMERIC and split into a spendable (free) part and a reserved
// part that supply contractions may draw from.
type Balance struct {
	AccountID     string          `db:"account_id"`
	CurrencyCode  string          `db:"currency_code"`
	Free          decimal.Decimal `db:"free"`
	Reserved      decimal.Decimal `db:"reserved"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}

// Issuance represents the total issuance row for one currency.
type Issuance struct {
	CurrencyCode  string          `db:"currency_code"`
	Total         decimal.Decimal `db:"total"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}
