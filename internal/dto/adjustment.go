package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// AdjustmentResponse defines the data returned for one adjustment record.
type AdjustmentResponse struct {
	AdjustmentID        string          `json:"adjustmentID"`
	Height              uint64          `json:"height"`
	CurrencyID          string          `json:"currencyID"`
	Price               decimal.Decimal `json:"price"`
	BaseUnit            decimal.Decimal `json:"baseUnit"`
	Outcome             string          `json:"outcome"`
	DeltaMagnitude      uint64          `json:"deltaMagnitude"`
	StabilizationAmount uint64          `json:"stabilizationAmount"`
	MarketMakerAmount   uint64          `json:"marketMakerAmount"`
	UnallocatedAmount   uint64          `json:"unallocatedAmount"`
	Reason              string          `json:"reason,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
}

// ToAdjustmentResponse converts a domain.AdjustmentRecord to its DTO.
func ToAdjustmentResponse(record domain.AdjustmentRecord) AdjustmentResponse {
	return AdjustmentResponse{
		AdjustmentID:        record.AdjustmentID,
		Height:              record.Height,
		CurrencyID:          string(record.CurrencyID),
		Price:               record.Price,
		BaseUnit:            record.BaseUnit,
		Outcome:             string(record.Outcome),
		DeltaMagnitude:      record.DeltaMagnitude,
		StabilizationAmount: record.StabilizationAmount,
		MarketMakerAmount:   record.MarketMakerAmount,
		UnallocatedAmount:   record.UnallocatedAmount,
		Reason:              record.Reason,
		CreatedAt:           record.CreatedAt,
	}
}

// ToListAdjustmentResponse converts a slice of records to response DTOs.
func ToListAdjustmentResponse(records []domain.AdjustmentRecord) []AdjustmentResponse {
	res := make([]AdjustmentResponse, len(records))
	for i, record := range records {
		res[i] = ToAdjustmentResponse(record)
	}
	return res
}
