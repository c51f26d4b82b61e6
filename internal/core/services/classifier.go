package services

import (
	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// PriceClassifier compares an observed market price against a currency's peg.
type PriceClassifier struct{}

// NewPriceClassifier creates a new PriceClassifier.
func NewPriceClassifier() *PriceClassifier {
	return &PriceClassifier{}
}

// Classify maps (price, baseUnit) to exactly one classification. The
// comparison order is exhaustive and mutually exclusive for all non-negative
// prices; no case is reachable twice.
func (c *PriceClassifier) Classify(price, baseUnit decimal.Decimal) domain.Classification {
	switch {
	case price.Sign() <= 0:
		return domain.InvalidPrice
	case price.Equal(baseUnit):
		return domain.AtPeg
	case price.GreaterThan(baseUnit):
		return domain.AbovePeg
	default:
		return domain.BelowPeg
	}
}
