package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceObservation represents one reported market price row.
type PriceObservation struct {
	ObservationID string          `db:"observation_id"` // Primary Key (UUID)
	CurrencyCode  string          `db:"currency_code"`
	Price         decimal.Decimal `db:"price"`
	Source        string          `db:"source"`
	ObservedAt    time.Time       `db:"observed_at"`
}
