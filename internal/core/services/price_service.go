package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
	"github.com/stabilis-labs/tes_engine/internal/dto"
)

// PriceService ingests market price observations and doubles as the price
// oracle for the adjustment scheduler, serving the latest observation per
// currency.
type PriceService struct {
	priceRepo    ports.PriceRepository
	currencyRepo ports.CurrencyRepository
}

// NewPriceService creates a new PriceService.
func NewPriceService(priceRepo ports.PriceRepository, currencyRepo ports.CurrencyRepository) *PriceService {
	return &PriceService{
		priceRepo:    priceRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure the service satisfies the oracle contract consumed by the scheduler.
var _ ports.PriceOracle = (*PriceService)(nil)

// SubmitObservation validates and stores one price observation.
func (s *PriceService) SubmitObservation(ctx context.Context, req dto.SubmitPriceRequest) (*domain.PriceObservation, error) {
	if req.Price.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	currencyID := domain.CurrencyID(req.CurrencyID)
	if _, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency '%s' is not tracked", apperrors.ErrValidation, req.CurrencyID)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", req.CurrencyID, err)
	}

	observation := domain.PriceObservation{
		ObservationID: uuid.NewString(),
		CurrencyID:    currencyID,
		Price:         req.Price,
		Source:        req.Source,
		ObservedAt:    time.Now().UTC(),
	}

	if err := s.priceRepo.SaveObservation(ctx, observation); err != nil {
		return nil, fmt.Errorf("failed to save price observation in service: %w", err)
	}
	return &observation, nil
}

// GetLatestObservation returns the most recent observation for a currency.
func (s *PriceService) GetLatestObservation(ctx context.Context, currencyID domain.CurrencyID) (*domain.PriceObservation, error) {
	observation, err := s.priceRepo.FindLatestObservation(ctx, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest observation in service: %w", err)
	}
	return observation, nil
}

// GetPrice implements ports.PriceOracle. A missing observation surfaces as an
// error so the scheduler records the currency as skipped instead of silently
// treating it as a zero adjustment.
func (s *PriceService) GetPrice(ctx context.Context, currencyID domain.CurrencyID) (decimal.Decimal, error) {
	observation, err := s.priceRepo.FindLatestObservation(ctx, currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no observation for %s", apperrors.ErrNotFound, currencyID)
		}
		return decimal.Zero, fmt.Errorf("failed to fetch price for %s: %w", currencyID, err)
	}
	return observation.Price, nil
}
