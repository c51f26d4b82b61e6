package mapping

import (
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/models"
)

// ToModelCurrency converts a domain TrackedCurrency to a model Currency
func ToModelCurrency(d domain.TrackedCurrency) models.Currency {
	return models.Currency{
		CurrencyCode: string(d.ID),
		Name:         d.Name,
		BaseUnit:     d.BaseUnit,
	}
}

// ToDomainCurrency converts a model Currency to a domain TrackedCurrency
func ToDomainCurrency(m models.Currency) domain.TrackedCurrency {
	return domain.TrackedCurrency{
		ID:       domain.CurrencyID(m.CurrencyCode),
		Name:     m.Name,
		BaseUnit: m.BaseUnit,
	}
}
