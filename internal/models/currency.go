package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a tracked currency row. BaseUnit is the configured peg.
type Currency struct {
	CurrencyCode string          `db:"currency_code"` // Primary Key (e.g., "SETT")
	Name         string          `db:"name"`
	BaseUnit     decimal.Decimal `db:"base_unit"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}
