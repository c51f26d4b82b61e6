package ports

import (
	"context"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/dto"
)

// CurrencySvcFacade exposes the tracked-currency read surface.
type CurrencySvcFacade interface {
	GetCurrency(ctx context.Context, currencyID domain.CurrencyID) (*domain.TrackedCurrency, uint64, error)
	ListCurrencies(ctx context.Context) ([]domain.TrackedCurrency, error)
}

// PriceSvcFacade ingests and serves market price observations.
type PriceSvcFacade interface {
	SubmitObservation(ctx context.Context, req dto.SubmitPriceRequest) (*domain.PriceObservation, error)
	GetLatestObservation(ctx context.Context, currencyID domain.CurrencyID) (*domain.PriceObservation, error)
}

// AccountSvcFacade exposes protocol-account balance operations so market
// makers can fund future contractions.
type AccountSvcFacade interface {
	Reserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
	Unreserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error
	GetBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (free, reserved uint64, err error)
}

// AdjustmentSvcFacade serves the persisted adjustment history.
type AdjustmentSvcFacade interface {
	ListAdjustments(ctx context.Context, currencyID domain.CurrencyID, limit int) ([]domain.AdjustmentRecord, error)
}

// RepositoryProvider bundles the persistence adapters handed to the service
// container.
type RepositoryProvider struct {
	CurrencyRepo   CurrencyRepository
	PriceRepo      PriceRepository
	AdjustmentRepo AdjustmentRepository
	LedgerRepo     LedgerRepository
}
