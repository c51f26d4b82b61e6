package services

import (
	"context"
	"fmt"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

// AccountService exposes protocol-account balance operations. Reserving funds
// is how the market-maker account commits capital that future contractions
// can draw from.
type AccountService struct {
	ledgerRepo ports.LedgerRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(ledgerRepo ports.LedgerRepository) *AccountService {
	return &AccountService{ledgerRepo: ledgerRepo}
}

// Reserve moves amount from the account's free to its reserved balance.
func (s *AccountService) Reserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if err := s.ledgerRepo.Reserve(ctx, currencyID, accountID, amount); err != nil {
		return fmt.Errorf("failed to reserve %d %s for %s: %w", amount, currencyID, accountID, err)
	}
	return nil
}

// Unreserve moves amount back from reserved to free.
func (s *AccountService) Unreserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	if err := s.ledgerRepo.Unreserve(ctx, currencyID, accountID, amount); err != nil {
		return fmt.Errorf("failed to unreserve %d %s for %s: %w", amount, currencyID, accountID, err)
	}
	return nil
}

// GetBalance returns the account's free and reserved balances.
func (s *AccountService) GetBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, uint64, error) {
	free, err := s.ledgerRepo.FreeBalance(ctx, currencyID, accountID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read free balance: %w", err)
	}
	reserved, err := s.ledgerRepo.ReservedBalance(ctx, currencyID, accountID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read reserved balance: %w", err)
	}
	return free, reserved, nil
}
