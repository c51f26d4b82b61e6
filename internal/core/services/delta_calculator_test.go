package services_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDelta_ExpansionScenario(t *testing.T) {
	// base_unit = 1000, price = 1100, issuance = 1_000_000 -> ratio 0.1 -> mint 100_000.
	calculator := services.NewSupplyDeltaCalculator()

	delta, err := calculator.ComputeDelta(domain.AbovePeg, decimal.NewFromInt(1100), decimal.NewFromInt(1000), 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, domain.Expand, delta.Direction)
	assert.Equal(t, uint64(100_000), delta.Magnitude)
}

func TestComputeDelta_ContractionScenario(t *testing.T) {
	// base_unit = 1000, price = 900 -> ratio = 1000/900 - 1 = 0.111... ->
	// burn 111_111, rounded toward zero.
	calculator := services.NewSupplyDeltaCalculator()

	delta, err := calculator.ComputeDelta(domain.BelowPeg, decimal.NewFromInt(900), decimal.NewFromInt(1000), 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, domain.Contract, delta.Direction)
	assert.Equal(t, uint64(111_111), delta.Magnitude)
}

func TestComputeDelta_SignMatchesSideOfPeg(t *testing.T) {
	calculator := services.NewSupplyDeltaCalculator()
	baseUnit := decimal.NewFromInt(1000)

	above, err := calculator.ComputeDelta(domain.AbovePeg, decimal.NewFromInt(1500), baseUnit, 10_000)
	require.NoError(t, err)
	assert.Equal(t, domain.Expand, above.Direction)

	below, err := calculator.ComputeDelta(domain.BelowPeg, decimal.NewFromInt(500), baseUnit, 10_000)
	require.NoError(t, err)
	assert.Equal(t, domain.Contract, below.Direction)
}

func TestComputeDelta_AtPegAndInvalidYieldNothing(t *testing.T) {
	calculator := services.NewSupplyDeltaCalculator()
	baseUnit := decimal.NewFromInt(1000)

	delta, err := calculator.ComputeDelta(domain.AtPeg, baseUnit, baseUnit, 1_000_000)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())

	delta, err = calculator.ComputeDelta(domain.InvalidPrice, decimal.Zero, baseUnit, 1_000_000)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())
}

func TestComputeDelta_ZeroIssuance(t *testing.T) {
	calculator := services.NewSupplyDeltaCalculator()

	delta, err := calculator.ComputeDelta(domain.AbovePeg, decimal.NewFromInt(2000), decimal.NewFromInt(1000), 0)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())
}

func TestComputeDelta_SaturatesAtMax(t *testing.T) {
	// price = base_unit * 2 on a full-range issuance: the delta equals the
	// saturated maximum instead of wrapping negative.
	calculator := services.NewSupplyDeltaCalculator()

	delta, err := calculator.ComputeDelta(domain.AbovePeg, decimal.NewFromInt(2000), decimal.NewFromInt(1000), math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, domain.Expand, delta.Direction)
	assert.Equal(t, uint64(math.MaxUint64), delta.Magnitude)
}

func TestComputeDelta_TinyDeviationRoundsToNoop(t *testing.T) {
	// A deviation too small to move a single unit of issuance is a no-op,
	// not a one-unit adjustment.
	calculator := services.NewSupplyDeltaCalculator()

	delta, err := calculator.ComputeDelta(domain.AbovePeg, decimal.RequireFromString("1000.0001"), decimal.NewFromInt(1000), 100)
	require.NoError(t, err)
	assert.True(t, delta.IsZero())
}

func TestComputeDelta_Deterministic(t *testing.T) {
	calculator := services.NewSupplyDeltaCalculator()
	price := decimal.RequireFromString("1234.5678")
	baseUnit := decimal.NewFromInt(1000)

	first, err := calculator.ComputeDelta(domain.AbovePeg, price, baseUnit, 987_654_321)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := calculator.ComputeDelta(domain.AbovePeg, price, baseUnit, 987_654_321)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
