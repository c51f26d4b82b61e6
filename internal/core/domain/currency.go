package domain

import "github.com/shopspring/decimal"

// CurrencyID identifies a tracked currency (e.g. "SETT", "JUSD"). IDs are
// opaque, totally ordered and immutable once configured.
type CurrencyID string

// AccountID identifies a protocol-controlled account on the ledger backend.
// The engine treats it as an opaque key.
type AccountID string

// TrackedCurrency is a currency whose supply the engine manages. BaseUnit is
// the peg: a market price equal to BaseUnit means no adjustment is needed.
type TrackedCurrency struct {
	ID       CurrencyID      `json:"currencyID"`
	Name     string          `json:"name"`
	BaseUnit decimal.Decimal `json:"baseUnit"` // must be > 0
}
