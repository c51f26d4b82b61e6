package services

import (
	"log/slog"

	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

// Container holds all the services and manages their dependencies.
type Container struct {
	Currency   ports.CurrencySvcFacade
	Price      ports.PriceSvcFacade
	Account    ports.AccountSvcFacade
	Adjustment ports.AdjustmentSvcFacade
	Scheduler  *AdjustmentScheduler
}

// NewContainer creates a new service container with properly initialized
// dependencies. The engine configuration is validated inside the scheduler
// constructor; a bad configuration fails container construction.
func NewContainer(repos *ports.RepositoryProvider, config domain.EngineConfig, logger *slog.Logger) (*Container, error) {
	priceService := NewPriceService(repos.PriceRepo, repos.CurrencyRepo)

	scheduler, err := NewAdjustmentScheduler(config, priceService, repos.LedgerRepo, repos.AdjustmentRepo, logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		Currency:   NewCurrencyService(repos.CurrencyRepo, repos.LedgerRepo),
		Price:      priceService,
		Account:    NewAccountService(repos.LedgerRepo),
		Adjustment: NewAdjustmentService(repos.AdjustmentRepo),
		Scheduler:  scheduler,
	}, nil
}

// Compile-time facade checks.
var (
	_ ports.CurrencySvcFacade   = (*CurrencyService)(nil)
	_ ports.PriceSvcFacade      = (*PriceService)(nil)
	_ ports.AccountSvcFacade    = (*AccountService)(nil)
	_ ports.AdjustmentSvcFacade = (*AdjustmentService)(nil)
)
