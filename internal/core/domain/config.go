package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
)

// EngineConfig is the immutable parameter set the adjustment scheduler is
// constructed with. It is validated eagerly at startup; a bad configuration
// must prevent the engine from processing any tick, never surface mid-cycle.
type EngineConfig struct {
	// AdjustmentFrequency is the number of ticks between adjustments.
	AdjustmentFrequency uint64
	// Currencies is the tracked-currency set, each with its peg.
	Currencies []TrackedCurrency
	// Ratios split every delta between the two protocol accounts.
	Ratios DistributionRatios
	// StabilizationAccount absorbs/funds the stabilization share.
	StabilizationAccount AccountID
	// MarketMakerAccount absorbs/funds the arbitrage share.
	MarketMakerAccount AccountID
}

// Validate checks the configuration invariants. All violations wrap
// apperrors.ErrConfigurationInvalid.
func (c EngineConfig) Validate() error {
	if c.AdjustmentFrequency == 0 {
		return fmt.Errorf("%w: adjustment frequency must be positive", apperrors.ErrConfigurationInvalid)
	}
	if len(c.Currencies) == 0 {
		return fmt.Errorf("%w: at least one tracked currency is required", apperrors.ErrConfigurationInvalid)
	}
	seen := make(map[CurrencyID]struct{}, len(c.Currencies))
	for _, currency := range c.Currencies {
		if currency.ID == "" {
			return fmt.Errorf("%w: currency id must not be empty", apperrors.ErrConfigurationInvalid)
		}
		if _, dup := seen[currency.ID]; dup {
			return fmt.Errorf("%w: duplicate currency %s", apperrors.ErrConfigurationInvalid, currency.ID)
		}
		seen[currency.ID] = struct{}{}
		if !currency.BaseUnit.IsPositive() {
			return fmt.Errorf("%w: base unit for %s must be positive", apperrors.ErrConfigurationInvalid, currency.ID)
		}
	}
	if c.Ratios.Stabilization.IsNegative() || c.Ratios.MarketMaker.IsNegative() {
		return fmt.Errorf("%w: distribution ratios must be non-negative", apperrors.ErrConfigurationInvalid)
	}
	if c.Ratios.Stabilization.Add(c.Ratios.MarketMaker).GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: distribution ratios sum to more than 1", apperrors.ErrConfigurationInvalid)
	}
	if c.StabilizationAccount == "" || c.MarketMakerAccount == "" {
		return fmt.Errorf("%w: both protocol accounts must be configured", apperrors.ErrConfigurationInvalid)
	}
	return nil
}
