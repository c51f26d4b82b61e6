package mapping

import (
	"github.com/shopspring/decimal"
)

var maxAmount = decimal.RequireFromString("18446744073709551615")

// AmountToDecimal converts an engine amount to its NUMERIC representation.
func AmountToDecimal(amount uint64) decimal.Decimal {
	return decimal.NewFromUint64(amount)
}

// DecimalToAmount converts a NUMERIC value read from the database to an
// engine amount, clamping to [0, MaxUint64]. The ledger owns these figures;
// a value outside the engine's representable range reads as the saturated
// bound, matching the engine-wide saturation policy.
func DecimalToAmount(value decimal.Decimal) uint64 {
	truncated := value.Truncate(0)
	if truncated.Sign() <= 0 {
		return 0
	}
	if truncated.Cmp(maxAmount) >= 0 {
		return maxAmount.BigInt().Uint64()
	}
	return truncated.BigInt().Uint64()
}
