package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/ports"
)

// SchedulerState is the scheduler's externally observable state.
type SchedulerState string

const (
	StateIdle      SchedulerState = "IDLE"
	StateAdjusting SchedulerState = "ADJUSTING"
)

// TickReport summarizes one tick. On non-adjustment ticks it is trivially
// successful with no records.
type TickReport struct {
	Height   uint64                    `json:"height"`
	Adjusted bool                      `json:"adjusted"`
	Records  []domain.AdjustmentRecord `json:"records,omitempty"`
}

// SchedulerStatus is a snapshot for the status endpoint.
type SchedulerStatus struct {
	State              SchedulerState `json:"state"`
	LastHeight         uint64         `json:"lastHeight"`
	LastAdjustedHeight uint64         `json:"lastAdjustedHeight"`
}

// AdjustmentScheduler gates the adjustment pipeline on the tick counter and,
// on adjustment ticks, runs classify -> compute delta -> distribute -> ledger
// mutation for every tracked currency. The engine itself is synchronous and
// pure over its fetched inputs; the mutex exists only so the HTTP surface can
// read status while the single tick goroutine drives OnTick.
type AdjustmentScheduler struct {
	config     domain.EngineConfig
	classifier *PriceClassifier
	calculator *SupplyDeltaCalculator
	policy     *DistributionPolicy
	oracle     ports.PriceOracle
	ledger     ports.Ledger
	history    ports.AdjustmentRepository
	logger     *slog.Logger

	mu                 sync.RWMutex
	state              SchedulerState
	lastHeight         uint64
	lastAdjustedHeight uint64
}

// NewAdjustmentScheduler constructs the scheduler. The configuration must
// already be validated; construction fails otherwise so a bad configuration
// can never reach a tick.
func NewAdjustmentScheduler(
	config domain.EngineConfig,
	oracle ports.PriceOracle,
	ledger ports.Ledger,
	history ports.AdjustmentRepository,
	logger *slog.Logger,
) (*AdjustmentScheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &AdjustmentScheduler{
		config:     config,
		classifier: NewPriceClassifier(),
		calculator: NewSupplyDeltaCalculator(),
		policy:     NewDistributionPolicy(config.Ratios),
		oracle:     oracle,
		ledger:     ledger,
		history:    history,
		logger:     logger,
		state:      StateIdle,
	}, nil
}

// Status returns a snapshot of the scheduler's state.
func (s *AdjustmentScheduler) Status() SchedulerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SchedulerStatus{
		State:              s.state,
		LastHeight:         s.lastHeight,
		LastAdjustedHeight: s.lastAdjustedHeight,
	}
}

// OnTick processes one tick at the given height. Heights must be delivered
// monotonically increasing by a single caller. When the height is not a
// multiple of the adjustment frequency the scheduler stays idle and no
// collaborator is called. Otherwise every tracked currency is adjusted
// independently: a failure on one (zero price, ledger rejection) is recorded
// and the scheduler proceeds to the next.
func (s *AdjustmentScheduler) OnTick(ctx context.Context, height uint64) TickReport {
	s.mu.Lock()
	s.lastHeight = height
	if height%s.config.AdjustmentFrequency != 0 {
		s.mu.Unlock()
		return TickReport{Height: height}
	}
	s.state = StateAdjusting
	s.mu.Unlock()

	records := make([]domain.AdjustmentRecord, 0, len(s.config.Currencies))
	for _, currency := range s.config.Currencies {
		record := s.adjustCurrency(ctx, height, currency)
		records = append(records, record)

		if err := s.history.SaveAdjustment(ctx, record); err != nil {
			s.logger.Error("failed to persist adjustment record",
				slog.String("currency", string(record.CurrencyID)),
				slog.Uint64("height", height),
				slog.String("error", err.Error()))
		}
		s.logger.Info("adjustment processed",
			slog.String("currency", string(record.CurrencyID)),
			slog.Uint64("height", height),
			slog.String("outcome", string(record.Outcome)),
			slog.Uint64("delta", record.DeltaMagnitude),
			slog.String("reason", record.Reason))
	}

	s.mu.Lock()
	s.state = StateIdle
	s.lastAdjustedHeight = height
	s.mu.Unlock()

	return TickReport{Height: height, Adjusted: true, Records: records}
}

// adjustCurrency runs the full pipeline for one currency and returns its
// auditable record. It never returns an error: every failure mode is an
// explicit per-currency outcome.
func (s *AdjustmentScheduler) adjustCurrency(ctx context.Context, height uint64, currency domain.TrackedCurrency) domain.AdjustmentRecord {
	record := domain.AdjustmentRecord{
		AdjustmentID: uuid.NewString(),
		Height:       height,
		CurrencyID:   currency.ID,
		BaseUnit:     currency.BaseUnit,
		CreatedAt:    time.Now().UTC(),
	}

	price, err := s.oracle.GetPrice(ctx, currency.ID)
	if err != nil {
		record.Outcome = domain.OutcomeSkipped
		record.Reason = fmt.Errorf("%w: %v", apperrors.ErrZeroPrice, err).Error()
		return record
	}
	record.Price = price

	classification := s.classifier.Classify(price, currency.BaseUnit)
	switch classification {
	case domain.InvalidPrice:
		record.Outcome = domain.OutcomeSkipped
		record.Reason = apperrors.ErrZeroPrice.Error()
		return record
	case domain.AtPeg:
		// Price equals the peg; an explicit no-op, not a fall-through.
		record.Outcome = domain.OutcomeNoop
		return record
	}

	totalIssuance, err := s.ledger.TotalIssuance(ctx, currency.ID)
	if err != nil {
		record.Outcome = domain.OutcomeFailed
		record.Reason = fmt.Sprintf("failed to read total issuance: %v", err)
		return record
	}

	delta, err := s.calculator.ComputeDelta(classification, price, currency.BaseUnit, totalIssuance)
	if err != nil {
		record.Outcome = domain.OutcomeFailed
		record.Reason = err.Error()
		return record
	}
	if delta.IsZero() {
		record.Outcome = domain.OutcomeNoop
		return record
	}
	record.DeltaMagnitude = delta.Magnitude
	if delta.Magnitude == math.MaxUint64 {
		// Saturated magnitude is a recorded approximation, not a failure.
		record.Reason = "arithmetic saturation"
	}

	switch delta.Direction {
	case domain.Expand:
		return s.expand(ctx, currency, delta.Magnitude, record)
	default:
		return s.contract(ctx, currency, delta.Magnitude, record)
	}
}

// expand mints the planned shares into the two protocol accounts. The
// unallocated remainder is intentionally never minted.
func (s *AdjustmentScheduler) expand(ctx context.Context, currency domain.TrackedCurrency, magnitude uint64, record domain.AdjustmentRecord) domain.AdjustmentRecord {
	plan := s.policy.PlanExpansion(magnitude)
	record.StabilizationAmount = plan.Stabilization
	record.MarketMakerAmount = plan.MarketMaker
	record.UnallocatedAmount = plan.Unallocated

	if plan.Stabilization > 0 {
		if err := s.ledger.Mint(ctx, currency.ID, s.config.StabilizationAccount, plan.Stabilization); err != nil {
			record.Outcome = domain.OutcomeFailed
			record.Reason = fmt.Errorf("%w: mint to stabilization account: %v", apperrors.ErrLedgerRejected, err).Error()
			return record
		}
	}
	if plan.MarketMaker > 0 {
		if err := s.ledger.Mint(ctx, currency.ID, s.config.MarketMakerAccount, plan.MarketMaker); err != nil {
			record.Outcome = domain.OutcomeFailed
			record.Reason = fmt.Errorf("%w: mint to market maker account: %v", apperrors.ErrLedgerRejected, err).Error()
			return record
		}
	}

	record.Outcome = domain.OutcomeExpanded
	return record
}

// contract burns the planned shares, market maker first, then the
// stabilization fund for any shortfall. Whatever neither reserve covers is
// left unallocated in the record.
func (s *AdjustmentScheduler) contract(ctx context.Context, currency domain.TrackedCurrency, magnitude uint64, record domain.AdjustmentRecord) domain.AdjustmentRecord {
	marketMakerReserved, err := s.ledger.ReservedBalance(ctx, currency.ID, s.config.MarketMakerAccount)
	if err != nil {
		record.Outcome = domain.OutcomeFailed
		record.Reason = fmt.Sprintf("failed to read market maker reserve: %v", err)
		return record
	}
	stabilizationReserved, err := s.ledger.ReservedBalance(ctx, currency.ID, s.config.StabilizationAccount)
	if err != nil {
		record.Outcome = domain.OutcomeFailed
		record.Reason = fmt.Sprintf("failed to read stabilization reserve: %v", err)
		return record
	}

	plan := s.policy.PlanContraction(magnitude, BurnFunding{
		MarketMakerReserved:   marketMakerReserved,
		StabilizationReserved: stabilizationReserved,
	})
	record.StabilizationAmount = plan.Stabilization
	record.MarketMakerAmount = plan.MarketMaker
	record.UnallocatedAmount = plan.Unallocated

	if plan.MarketMaker > 0 {
		if err := s.ledger.Burn(ctx, currency.ID, s.config.MarketMakerAccount, plan.MarketMaker); err != nil {
			record.Outcome = domain.OutcomeFailed
			record.Reason = fmt.Errorf("%w: burn from market maker account: %v", apperrors.ErrLedgerRejected, err).Error()
			return record
		}
	}
	if plan.Stabilization > 0 {
		if err := s.ledger.Burn(ctx, currency.ID, s.config.StabilizationAccount, plan.Stabilization); err != nil {
			record.Outcome = domain.OutcomeFailed
			record.Reason = fmt.Errorf("%w: burn from stabilization account: %v", apperrors.ErrLedgerRejected, err).Error()
			return record
		}
	}

	record.Outcome = domain.OutcomeContracted
	return record
}
