package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/fixedpoint"
)

// SupplyDeltaCalculator turns a price deviation and the current total
// issuance into a supply delta. All arithmetic goes through the fixedpoint
// package: divisions are truncated to a fixed scale and the final scaling of
// the issuance saturates instead of wrapping, so a delta at the numeric limit
// is a valid approximation rather than an error.
type SupplyDeltaCalculator struct{}

// NewSupplyDeltaCalculator creates a new SupplyDeltaCalculator.
func NewSupplyDeltaCalculator() *SupplyDeltaCalculator {
	return &SupplyDeltaCalculator{}
}

// ComputeDelta computes the supply change for one currency.
//
// The deviation ratio is high/low - 1 with high = max(price, baseUnit) and
// low = min(price, baseUnit). Keeping the ratio non-negative on both sides of
// the peg means a single saturating subtraction-of-one serves both
// directions; the classification alone carries the sign. The magnitude is
// ratio * totalIssuance truncated toward zero.
//
// AtPeg and InvalidPrice classifications must be resolved by the caller
// before this point; if they reach here they yield a zero delta and never a
// ledger call.
func (c *SupplyDeltaCalculator) ComputeDelta(classification domain.Classification, price, baseUnit decimal.Decimal, totalIssuance uint64) (domain.SupplyDelta, error) {
	var direction domain.Direction
	switch classification {
	case domain.AbovePeg:
		direction = domain.Expand
	case domain.BelowPeg:
		direction = domain.Contract
	default:
		return domain.SupplyDelta{Direction: domain.None}, nil
	}

	if totalIssuance == 0 {
		// Nothing to scale.
		return domain.SupplyDelta{Direction: domain.None}, nil
	}

	high, low := price, baseUnit
	if high.LessThan(low) {
		high, low = low, high
	}

	ratio, err := fixedpoint.DeviationRatio(high, low)
	if err != nil {
		return domain.SupplyDelta{}, fmt.Errorf("failed to compute deviation ratio: %w", err)
	}

	magnitude := fixedpoint.SaturatingFractionOf(ratio, totalIssuance)
	if magnitude == 0 {
		return domain.SupplyDelta{Direction: domain.None}, nil
	}

	return domain.SupplyDelta{Direction: direction, Magnitude: magnitude}, nil
}
