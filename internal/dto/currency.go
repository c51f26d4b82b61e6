package dto

import (
	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// CurrencyResponse defines the data returned for a tracked currency.
type CurrencyResponse struct {
	CurrencyID    string          `json:"currencyID"`
	Name          string          `json:"name"`
	BaseUnit      decimal.Decimal `json:"baseUnit"`
	TotalIssuance uint64          `json:"totalIssuance"`
}

// ToCurrencyResponse converts a domain.TrackedCurrency plus its current
// issuance to a CurrencyResponse DTO.
func ToCurrencyResponse(currency *domain.TrackedCurrency, totalIssuance uint64) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID:    string(currency.ID),
		Name:          currency.Name,
		BaseUnit:      currency.BaseUnit,
		TotalIssuance: totalIssuance,
	}
}

// ToListCurrencyResponse converts a slice of tracked currencies with their
// issuance figures to response DTOs.
func ToListCurrencyResponse(currencies []domain.TrackedCurrency, issuance map[domain.CurrencyID]uint64) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, currency := range currencies {
		res[i] = ToCurrencyResponse(&currency, issuance[currency.ID])
	}
	return res
}
