package services

import (
	"context"
	"fmt"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

// CurrencyService provides read access to the tracked-currency set together
// with each currency's current total issuance from the ledger backend.
type CurrencyService struct {
	currencyRepo ports.CurrencyRepository
	ledger       ports.Ledger
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo ports.CurrencyRepository, ledger ports.Ledger) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		ledger:       ledger,
	}
}

// GetCurrency returns one tracked currency and its current total issuance.
func (s *CurrencyService) GetCurrency(ctx context.Context, currencyID domain.CurrencyID) (*domain.TrackedCurrency, uint64, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get currency in service: %w", err)
	}
	totalIssuance, err := s.ledger.TotalIssuance(ctx, currencyID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read issuance for %s: %w", currencyID, err)
	}
	return currency, totalIssuance, nil
}

// ListCurrencies returns all tracked currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.TrackedCurrency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return currencies, nil
}

// SeedCurrencies upserts the configured tracked-currency set at startup.
func (s *CurrencyService) SeedCurrencies(ctx context.Context, currencies []domain.TrackedCurrency) error {
	for _, currency := range currencies {
		if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
			return fmt.Errorf("failed to seed currency %s: %w", currency.ID, err)
		}
	}
	return nil
}
