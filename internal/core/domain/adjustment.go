package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction says which way a supply delta moves total issuance.
type Direction int

const (
	None Direction = iota
	Expand
	Contract
)

func (d Direction) String() string {
	switch d {
	case Expand:
		return "EXPAND"
	case Contract:
		return "CONTRACT"
	default:
		return "NONE"
	}
}

// SupplyDelta is the computed supply change for one currency in one
// adjustment cycle: a direction plus an unsigned magnitude. It is transient,
// produced and consumed within a single cycle, never persisted as-is.
type SupplyDelta struct {
	Direction Direction
	Magnitude uint64
}

// IsZero reports whether the delta requires no ledger mutation.
func (d SupplyDelta) IsZero() bool {
	return d.Direction == None || d.Magnitude == 0
}

// Outcome is the per-currency result of one adjustment cycle.
type Outcome string

const (
	OutcomeNoop       Outcome = "NOOP"
	OutcomeExpanded   Outcome = "EXPANDED"
	OutcomeContracted Outcome = "CONTRACTED"
	OutcomeSkipped    Outcome = "SKIPPED"
	OutcomeFailed     Outcome = "FAILED"
)

// AdjustmentRecord is the persisted, auditable outcome of one currency's
// adjustment at one tick height.
type AdjustmentRecord struct {
	AdjustmentID        string          `json:"adjustmentID"`
	Height              uint64          `json:"height"`
	CurrencyID          CurrencyID      `json:"currencyID"`
	Price               decimal.Decimal `json:"price"`
	BaseUnit            decimal.Decimal `json:"baseUnit"`
	Outcome             Outcome         `json:"outcome"`
	DeltaMagnitude      uint64          `json:"deltaMagnitude"`
	StabilizationAmount uint64          `json:"stabilizationAmount"`
	MarketMakerAmount   uint64          `json:"marketMakerAmount"`
	UnallocatedAmount   uint64          `json:"unallocatedAmount"`
	Reason              string          `json:"reason,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}
