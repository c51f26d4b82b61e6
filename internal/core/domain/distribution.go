package domain

import "github.com/shopspring/decimal"

// DistributionRatios configures how each supply delta is split between the
// stabilization-fund account and the market-maker account. Both fractions are
// non-negative and their sum never exceeds 1; any remainder is the
// unallocated portion of the plan.
type DistributionRatios struct {
	Stabilization decimal.Decimal
	MarketMaker   decimal.Decimal
}

// DistributionPlan splits one delta magnitude between the two protocol
// accounts. The plan is a pure value: realizing it against the ledger is the
// caller's job. Stabilization + MarketMaker + Unallocated always equals the
// delta magnitude it was planned from.
type DistributionPlan struct {
	Stabilization uint64
	MarketMaker   uint64
	Unallocated   uint64
}

// Total returns the magnitude the plan accounts for.
func (p DistributionPlan) Total() uint64 {
	return p.Stabilization + p.MarketMaker + p.Unallocated
}
