package services_test

import (
	"context"
	"testing"

	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	MockLedger
}

func (m *MockLedgerRepository) FreeBalance(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID) (uint64, error) {
	args := m.Called(ctx, currencyID, accountID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockLedgerRepository) Reserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	args := m.Called(ctx, currencyID, accountID, amount)
	return args.Error(0)
}

func (m *MockLedgerRepository) Unreserve(ctx context.Context, currencyID domain.CurrencyID, accountID domain.AccountID, amount uint64) error {
	args := m.Called(ctx, currencyID, accountID, amount)
	return args.Error(0)
}

func TestAccountService_Reserve_PropagatesLedgerRejection(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLedgerRepository)
	repo.On("Reserve", ctx, domain.CurrencyID("SETT"), mmAccount, uint64(500)).Return(apperrors.ErrLedgerRejected).Once()

	svc := services.NewAccountService(repo)

	err := svc.Reserve(ctx, "SETT", mmAccount, 500)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrLedgerRejected)
	repo.AssertExpectations(t)
}

func TestAccountService_GetBalance(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLedgerRepository)
	repo.On("FreeBalance", ctx, domain.CurrencyID("SETT"), mmAccount).Return(uint64(700), nil).Once()
	repo.On("ReservedBalance", ctx, domain.CurrencyID("SETT"), mmAccount).Return(uint64(300), nil).Once()

	svc := services.NewAccountService(repo)

	free, reserved, err := svc.GetBalance(ctx, "SETT", mmAccount)
	require.NoError(t, err)
	assert.EqualValues(t, 700, free)
	assert.EqualValues(t, 300, reserved)
	repo.AssertNotCalled(t, "Mint", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
