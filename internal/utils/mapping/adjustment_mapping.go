package mapping

import (
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/models"
)

// ToModelAdjustment converts a domain AdjustmentRecord to a model Adjustment
func ToModelAdjustment(d domain.AdjustmentRecord) models.Adjustment {
	return models.Adjustment{
		AdjustmentID:        d.AdjustmentID,
		Height:              int64(d.Height),
		CurrencyCode:        string(d.CurrencyID),
		Price:               d.Price,
		BaseUnit:            d.BaseUnit,
		Outcome:             string(d.Outcome),
		DeltaMagnitude:      AmountToDecimal(d.DeltaMagnitude),
		StabilizationAmount: AmountToDecimal(d.StabilizationAmount),
		MarketMakerAmount:   AmountToDecimal(d.MarketMakerAmount),
		UnallocatedAmount:   AmountToDecimal(d.UnallocatedAmount),
		Reason:              d.Reason,
		CreatedAt:           d.CreatedAt,
	}
}

// ToDomainAdjustment converts a model Adjustment to a domain AdjustmentRecord
func ToDomainAdjustment(m models.Adjustment) domain.AdjustmentRecord {
	return domain.AdjustmentRecord{
		AdjustmentID:        m.AdjustmentID,
		Height:              uint64(m.Height),
		CurrencyID:          domain.CurrencyID(m.CurrencyCode),
		Price:               m.Price,
		BaseUnit:            m.BaseUnit,
		Outcome:             domain.Outcome(m.Outcome),
		DeltaMagnitude:      DecimalToAmount(m.DeltaMagnitude),
		StabilizationAmount: DecimalToAmount(m.StabilizationAmount),
		MarketMakerAmount:   DecimalToAmount(m.MarketMakerAmount),
		UnallocatedAmount:   DecimalToAmount(m.UnallocatedAmount),
		Reason:              m.Reason,
		CreatedAt:           m.CreatedAt,
	}
}
