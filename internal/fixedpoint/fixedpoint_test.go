package fixedpoint_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/fixedpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide_ByZero(t *testing.T) {
	_, err := fixedpoint.Divide(decimal.NewFromInt(10), decimal.Zero)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestDivide_TruncatesToScale(t *testing.T) {
	// 1000/900 = 1.111... repeating; result must be truncated, not rounded up.
	got, err := fixedpoint.Divide(decimal.NewFromInt(1000), decimal.NewFromInt(900))
	require.NoError(t, err)
	assert.Equal(t, "1.111111111111111111", got.String())
}

func TestDeviationRatio(t *testing.T) {
	tests := []struct {
		name string
		high int64
		low  int64
		want string
	}{
		{"ten percent above", 1100, 1000, "0.1"},
		{"equal means zero deviation", 1000, 1000, "0"},
		{"one ninth", 1000, 900, "0.111111111111111111"},
		{"double", 2000, 1000, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fixedpoint.DeviationRatio(decimal.NewFromInt(tt.high), decimal.NewFromInt(tt.low))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSaturatingFractionOf(t *testing.T) {
	tenth := decimal.RequireFromString("0.1")

	assert.Equal(t, uint64(100_000), fixedpoint.SaturatingFractionOf(tenth, 1_000_000))

	// Truncation toward zero: 0.111... * 1_000_000 = 111111.11... -> 111111.
	ninth, err := fixedpoint.DeviationRatio(decimal.NewFromInt(1000), decimal.NewFromInt(900))
	require.NoError(t, err)
	assert.Equal(t, uint64(111_111), fixedpoint.SaturatingFractionOf(ninth, 1_000_000))

	// Zero amount scales nothing regardless of ratio.
	assert.Equal(t, uint64(0), fixedpoint.SaturatingFractionOf(tenth, 0))

	// Negative fractions clamp to zero rather than wrapping.
	assert.Equal(t, uint64(0), fixedpoint.SaturatingFractionOf(decimal.NewFromInt(-1), 500))
}

func TestSaturatingFractionOf_ClampsAtMax(t *testing.T) {
	// ratio 1 on a full-range issuance is representable exactly at the limit.
	one := decimal.NewFromInt(1)
	assert.Equal(t, uint64(math.MaxUint64), fixedpoint.SaturatingFractionOf(one, math.MaxUint64))

	// Anything beyond the limit clamps instead of wrapping negative.
	two := decimal.NewFromInt(2)
	assert.Equal(t, uint64(math.MaxUint64), fixedpoint.SaturatingFractionOf(two, math.MaxUint64))
}

func TestSaturatingAddSub(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), fixedpoint.SaturatingAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(5), fixedpoint.SaturatingAdd(2, 3))
	assert.Equal(t, uint64(0), fixedpoint.SaturatingSub(3, 5))
	assert.Equal(t, uint64(2), fixedpoint.SaturatingSub(5, 3))
}

func TestDivide_Deterministic(t *testing.T) {
	a := decimal.RequireFromString("1234.567")
	b := decimal.RequireFromString("89.01")
	first, err := fixedpoint.Divide(a, b)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := fixedpoint.Divide(a, b)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}
