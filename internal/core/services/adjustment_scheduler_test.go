package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PriceOracle ---
type MockPriceOracle struct {
	mock.Mock
}

func (m *MockPriceOracle) GetPrice(ctx context.Context, currencyID domain.CurrencyID) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock Ledger ---
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) TotalIssuance(ctx context.Context, currencyID domain.CurrencyID) (uint64, error) {
	args := m.Called(ctx, currencyID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockLedger) ReservedBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error) {
	args := m.Called(ctx, currencyID, accountID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockLedger) Mint(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	args := m.Called(ctx, currencyID, accountID, amount)
	return args.Error(0)
}

func (m *MockLedger) Burn(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	args := m.Called(ctx, currencyID, accountID, amount)
	return args.Error(0)
}

// --- Mock AdjustmentRepository ---
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) SaveAdjustment(ctx context.Context, record domain.AdjustmentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) ListAdjustments(ctx context.Context, limit int) ([]domain.AdjustmentRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentRecord), args.Error(1)
}

func (m *MockAdjustmentRepository) ListAdjustmentsByCurrency(ctx context.Context, currencyID domain.CurrencyID, limit int) ([]domain.AdjustmentRecord, error) {
	args := m.Called(ctx, currencyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdjustmentRecord), args.Error(1)
}

const (
	stabAccount = domain.AccountID("stabilization-fund")
	mmAccount   = domain.AccountID("market-maker")
)

// --- Test Suite ---
type AdjustmentSchedulerTestSuite struct {
	suite.Suite
	oracle  *MockPriceOracle
	ledger  *MockLedger
	history *MockAdjustmentRepository
}

func (s *AdjustmentSchedulerTestSuite) SetupTest() {
	s.oracle = new(MockPriceOracle)
	s.ledger = new(MockLedger)
	s.history = new(MockAdjustmentRepository)
}

func (s *AdjustmentSchedulerTestSuite) newScheduler(currencies ...domain.TrackedCurrency) *services.AdjustmentScheduler {
	config := domain.EngineConfig{
		AdjustmentFrequency: 10,
		Currencies:          currencies,
		Ratios: domain.DistributionRatios{
			Stabilization: decimal.RequireFromString("0.4"),
			MarketMaker:   decimal.RequireFromString("0.4"),
		},
		StabilizationAccount: stabAccount,
		MarketMakerAccount:   mmAccount,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scheduler, err := services.NewAdjustmentScheduler(config, s.oracle, s.ledger, s.history, logger)
	s.Require().NoError(err)
	return scheduler
}

func sett() domain.TrackedCurrency {
	return domain.TrackedCurrency{ID: "SETT", Name: "Sett Currency", BaseUnit: decimal.NewFromInt(1000)}
}

func jusd() domain.TrackedCurrency {
	return domain.TrackedCurrency{ID: "JUSD", Name: "Jusd Currency", BaseUnit: decimal.NewFromInt(1000)}
}

func (s *AdjustmentSchedulerTestSuite) TestNonAdjustmentTickStaysIdle() {
	scheduler := s.newScheduler(sett())

	report := scheduler.OnTick(context.Background(), 7)

	s.False(report.Adjusted)
	s.Empty(report.Records)
	s.Equal(services.StateIdle, scheduler.Status().State)
	// No oracle or ledger call may happen on a gated tick.
	s.oracle.AssertNotCalled(s.T(), "GetPrice", mock.Anything, mock.Anything)
	s.ledger.AssertNotCalled(s.T(), "TotalIssuance", mock.Anything, mock.Anything)
}

func (s *AdjustmentSchedulerTestSuite) TestExpansionMintsBothShares() {
	scheduler := s.newScheduler(sett())
	ctx := context.Background()

	s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.NewFromInt(1100), nil).Once()
	s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("SETT")).Return(uint64(1_000_000), nil).Once()
	// delta = 100_000; ratios 0.4/0.4 -> 40_000 each, 20_000 unallocated.
	s.ledger.On("Mint", ctx, domain.CurrencyID("SETT"), stabAccount, uint64(40_000)).Return(nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("SETT"), mmAccount, uint64(40_000)).Return(nil).Once()
	s.history.On("SaveAdjustment", ctx, mock.MatchedBy(func(r domain.AdjustmentRecord) bool {
		return r.Outcome == domain.OutcomeExpanded &&
			r.DeltaMagnitude == 100_000 &&
			r.StabilizationAmount == 40_000 &&
			r.MarketMakerAmount == 40_000 &&
			r.UnallocatedAmount == 20_000
	})).Return(nil).Once()

	report := scheduler.OnTick(ctx, 10)

	s.True(report.Adjusted)
	s.Require().Len(report.Records, 1)
	s.Equal(domain.OutcomeExpanded, report.Records[0].Outcome)
	s.oracle.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
	s.history.AssertExpectations(s.T())
}

func (s *AdjustmentSchedulerTestSuite) TestContractionBurnsMarketMakerFirst() {
	scheduler := s.newScheduler(sett())
	ctx := context.Background()

	// price 900 -> ratio 1/9 -> delta 111_111 (toward zero).
	s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.NewFromInt(900), nil).Once()
	s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("SETT")).Return(uint64(1_000_000), nil).Once()
	s.ledger.On("ReservedBalance", ctx, domain.CurrencyID("SETT"), mmAccount).Return(uint64(60_000), nil).Once()
	s.ledger.On("ReservedBalance", ctx, domain.CurrencyID("SETT"), stabAccount).Return(uint64(100_000), nil).Once()
	s.ledger.On("Burn", ctx, domain.CurrencyID("SETT"), mmAccount, uint64(60_000)).Return(nil).Once()
	s.ledger.On("Burn", ctx, domain.CurrencyID("SETT"), stabAccount, uint64(51_111)).Return(nil).Once()
	s.history.On("SaveAdjustment", ctx, mock.MatchedBy(func(r domain.AdjustmentRecord) bool {
		return r.Outcome == domain.OutcomeContracted &&
			r.DeltaMagnitude == 111_111 &&
			r.MarketMakerAmount == 60_000 &&
			r.StabilizationAmount == 51_111 &&
			r.UnallocatedAmount == 0
	})).Return(nil).Once()

	report := scheduler.OnTick(ctx, 20)

	s.Require().Len(report.Records, 1)
	s.Equal(domain.OutcomeContracted, report.Records[0].Outcome)
	s.ledger.AssertExpectations(s.T())
}

func (s *AdjustmentSchedulerTestSuite) TestAtPegIsExplicitNoop() {
	scheduler := s.newScheduler(sett())
	ctx := context.Background()

	s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.NewFromInt(1000), nil).Once()
	s.history.On("SaveAdjustment", ctx, mock.MatchedBy(func(r domain.AdjustmentRecord) bool {
		return r.Outcome == domain.OutcomeNoop && r.DeltaMagnitude == 0
	})).Return(nil).Once()

	report := scheduler.OnTick(ctx, 10)

	s.Require().Len(report.Records, 1)
	s.Equal(domain.OutcomeNoop, report.Records[0].Outcome)
	// At peg the issuance is never even read.
	s.ledger.AssertNotCalled(s.T(), "TotalIssuance", mock.Anything, mock.Anything)
}

func (s *AdjustmentSchedulerTestSuite) TestZeroPriceSkipsCurrencyButNotTick() {
	scheduler := s.newScheduler(sett(), jusd())
	ctx := context.Background()

	// SETT reports zero: skipped, no arithmetic on its issuance.
	s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.Zero, nil).Once()
	// JUSD adjusts normally.
	s.oracle.On("GetPrice", ctx, domain.CurrencyID("JUSD")).Return(decimal.NewFromInt(1100), nil).Once()
	s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("JUSD")).Return(uint64(1_000_000), nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("JUSD"), stabAccount, uint64(40_000)).Return(nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("JUSD"), mmAccount, uint64(40_000)).Return(nil).Once()
	s.history.On("SaveAdjustment", ctx, mock.Anything).Return(nil).Twice()

	report := scheduler.OnTick(ctx, 10)

	s.Require().Len(report.Records, 2)
	s.Equal(domain.OutcomeSkipped, report.Records[0].Outcome)
	s.Contains(report.Records[0].Reason, apperrors.ErrZeroPrice.Error())
	s.Equal(domain.OutcomeExpanded, report.Records[1].Outcome)
	s.ledger.AssertNotCalled(s.T(), "TotalIssuance", mock.Anything, domain.CurrencyID("SETT"))
	s.ledger.AssertExpectations(s.T())
}

func (s *AdjustmentSchedulerTestSuite) TestLedgerRejectionFailsOnlyThatCurrency() {
	scheduler := s.newScheduler(sett(), jusd())
	ctx := context.Background()

	s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.NewFromInt(1100), nil).Once()
	s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("SETT")).Return(uint64(1_000_000), nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("SETT"), stabAccount, uint64(40_000)).Return(apperrors.ErrLedgerRejected).Once()

	s.oracle.On("GetPrice", ctx, domain.CurrencyID("JUSD")).Return(decimal.NewFromInt(1100), nil).Once()
	s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("JUSD")).Return(uint64(1_000_000), nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("JUSD"), stabAccount, uint64(40_000)).Return(nil).Once()
	s.ledger.On("Mint", ctx, domain.CurrencyID("JUSD"), mmAccount, uint64(40_000)).Return(nil).Once()
	s.history.On("SaveAdjustment", ctx, mock.Anything).Return(nil).Twice()

	report := scheduler.OnTick(ctx, 10)

	s.Require().Len(report.Records, 2)
	s.Equal(domain.OutcomeFailed, report.Records[0].Outcome)
	s.Contains(report.Records[0].Reason, apperrors.ErrLedgerRejected.Error())
	s.Equal(domain.OutcomeExpanded, report.Records[1].Outcome)
}

func (s *AdjustmentSchedulerTestSuite) TestDeterministicAcrossRuns() {
	ctx := context.Background()

	run := func() domain.AdjustmentRecord {
		s.SetupTest()
		scheduler := s.newScheduler(sett())
		s.oracle.On("GetPrice", ctx, domain.CurrencyID("SETT")).Return(decimal.RequireFromString("1234.5678"), nil).Once()
		s.ledger.On("TotalIssuance", ctx, domain.CurrencyID("SETT")).Return(uint64(987_654_321), nil).Once()
		s.ledger.On("Mint", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		s.history.On("SaveAdjustment", ctx, mock.Anything).Return(nil).Once()
		report := scheduler.OnTick(ctx, 10)
		s.Require().Len(report.Records, 1)
		return report.Records[0]
	}

	first := run()
	second := run()

	// Identical inputs must produce identical deltas and splits on every run.
	s.Equal(first.DeltaMagnitude, second.DeltaMagnitude)
	s.Equal(first.StabilizationAmount, second.StabilizationAmount)
	s.Equal(first.MarketMakerAmount, second.MarketMakerAmount)
	s.Equal(first.UnallocatedAmount, second.UnallocatedAmount)
	s.Equal(first.Outcome, second.Outcome)
}

func (s *AdjustmentSchedulerTestSuite) TestInvalidConfigurationFailsConstruction() {
	config := domain.EngineConfig{
		AdjustmentFrequency:  0,
		Currencies:           []domain.TrackedCurrency{sett()},
		StabilizationAccount: stabAccount,
		MarketMakerAccount:   mmAccount,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := services.NewAdjustmentScheduler(config, s.oracle, s.ledger, s.history, logger)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConfigurationInvalid)
}

func TestAdjustmentSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(AdjustmentSchedulerTestSuite))
}
