package mapping

import (
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/models"
)

// ToModelPriceObservation converts a domain PriceObservation to its model
func ToModelPriceObservation(d domain.PriceObservation) models.PriceObservation {
	return models.PriceObservation{
		ObservationID: d.ObservationID,
		CurrencyCode:  string(d.CurrencyID),
		Price:         d.Price,
		Source:        d.Source,
		ObservedAt:    d.ObservedAt,
	}
}

// ToDomainPriceObservation converts a model PriceObservation to its domain form
func ToDomainPriceObservation(m models.PriceObservation) domain.PriceObservation {
	return domain.PriceObservation{
		ObservationID: m.ObservationID,
		CurrencyID:    domain.CurrencyID(m.CurrencyCode),
		Price:         m.Price,
		Source:        m.Source,
		ObservedAt:    m.ObservedAt,
	}
}
