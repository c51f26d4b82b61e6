package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// SubmitPriceRequest defines the data needed to report a market price
// observation for a tracked currency.
type SubmitPriceRequest struct {
	CurrencyID string          `json:"currencyID" binding:"required,uppercase,min=3,max=8"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Source     string          `json:"source" binding:"required"`
}

// PriceObservationResponse defines the data returned for an observation.
type PriceObservationResponse struct {
	ObservationID string          `json:"observationID"`
	CurrencyID    string          `json:"currencyID"`
	Price         decimal.Decimal `json:"price"`
	Source        string          `json:"source"`
	ObservedAt    time.Time       `json:"observedAt"`
}

// ToPriceObservationResponse converts a domain.PriceObservation to its DTO.
func ToPriceObservationResponse(obs *domain.PriceObservation) PriceObservationResponse {
	return PriceObservationResponse{
		ObservationID: obs.ObservationID,
		CurrencyID:    string(obs.CurrencyID),
		Price:         obs.Price,
		Source:        obs.Source,
		ObservedAt:    obs.ObservedAt,
	}
}
