// Package fixedpoint provides deterministic, saturating arithmetic for the
// supply-elasticity pipeline. All values are decimal-backed; float64 is never
// used, and every division is truncated to a fixed scale so that independently
// executing replicas produce bit-identical results.
package fixedpoint

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
)

// Scale is the number of fractional digits every division result is truncated
// to. Results are exact up to this scale; anything beyond is discarded
// (rounding toward zero), never rounded half-up.
const Scale = 18

var (
	one       = decimal.NewFromInt(1)
	maxUint64 = decimal.RequireFromString("18446744073709551615")
)

// Divide returns a/b truncated to Scale fractional digits.
// It fails with apperrors.ErrDivisionByZero when b is zero.
func Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, apperrors.ErrDivisionByZero
	}
	return a.DivRound(b, Scale+1).Truncate(Scale), nil
}

// DeviationRatio returns high/low - 1, the non-negative relative deviation of
// high from low, truncated to Scale. Callers must pass high >= low > 0; the
// subtraction therefore never goes negative and no sign handling is needed
// on either side of the peg.
func DeviationRatio(high, low decimal.Decimal) (decimal.Decimal, error) {
	quotient, err := Divide(high, low)
	if err != nil {
		return decimal.Zero, err
	}
	ratio := quotient.Sub(one)
	if ratio.IsNegative() {
		ratio = decimal.Zero
	}
	return ratio, nil
}

// SaturatingFractionOf returns fraction * amount truncated toward zero and
// clamped to [0, math.MaxUint64]. A clamped result is a valid approximation,
// not an error. Negative fractions clamp to zero.
func SaturatingFractionOf(fraction decimal.Decimal, amount uint64) uint64 {
	if fraction.Sign() <= 0 || amount == 0 {
		return 0
	}
	product := fraction.Mul(decimal.NewFromUint64(amount)).Truncate(0)
	if product.Cmp(maxUint64) >= 0 {
		return math.MaxUint64
	}
	return product.BigInt().Uint64()
}

// SaturatingAdd returns a+b clamped to math.MaxUint64.
func SaturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

// SaturatingSub returns a-b clamped to zero.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
