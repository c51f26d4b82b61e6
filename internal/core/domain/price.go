package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification is the result of comparing an observed market price against
// a currency's peg. The four cases are exhaustive and mutually exclusive for
// all non-negative prices.
type Classification int

const (
	// InvalidPrice marks a zero (or negative) observation. It is fatal for
	// the currency's adjustment this tick and must never default to a silent
	// zero adjustment.
	InvalidPrice Classification = iota
	// AtPeg means price == base unit; an explicit, observable no-op.
	AtPeg
	// AbovePeg means price > base unit; supply must expand to dilute the
	// price back down.
	AbovePeg
	// BelowPeg means price < base unit; supply must contract to scarcen and
	// raise the price.
	BelowPeg
)

func (c Classification) String() string {
	switch c {
	case AtPeg:
		return "AT_PEG"
	case AbovePeg:
		return "ABOVE_PEG"
	case BelowPeg:
		return "BELOW_PEG"
	default:
		return "INVALID_PRICE"
	}
}

// PriceObservation is a market price reported for one currency. The engine
// consumes only the latest observation per currency; older rows are kept for
// audit.
type PriceObservation struct {
	ObservationID string          `json:"observationID"`
	CurrencyID    CurrencyID      `json:"currencyID"`
	Price         decimal.Decimal `json:"price"`
	Source        string          `json:"source"`
	ObservedAt    time.Time       `json:"observedAt"`
}
