package services

import (
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
	"github.com/stabilis-labs/tes_engine/internal/fixedpoint"
)

// DistributionPolicy splits a supply delta between the stabilization-fund
// account and the market-maker account. It only produces plans; realizing a
// plan against the ledger is the scheduler's job.
type DistributionPolicy struct {
	ratios domain.DistributionRatios
}

// NewDistributionPolicy creates a policy from validated ratios.
func NewDistributionPolicy(ratios domain.DistributionRatios) *DistributionPolicy {
	return &DistributionPolicy{ratios: ratios}
}

// BurnFunding is what the two protocol accounts currently hold in reserve,
// i.e. what a contraction may draw from each.
type BurnFunding struct {
	MarketMakerReserved   uint64
	StabilizationReserved uint64
}

// PlanExpansion splits a mint magnitude by the configured ratios. Each share
// is truncated toward zero; the remainder stays unallocated and is simply not
// minted. If rounding ever pushed the shares past the magnitude, the
// stabilization share absorbs the difference so the plan stays exact and the
// outcome deterministic.
func (p *DistributionPolicy) PlanExpansion(magnitude uint64) domain.DistributionPlan {
	if magnitude == 0 {
		return domain.DistributionPlan{}
	}

	stabilization := fixedpoint.SaturatingFractionOf(p.ratios.Stabilization, magnitude)
	marketMaker := fixedpoint.SaturatingFractionOf(p.ratios.MarketMaker, magnitude)

	allocated := fixedpoint.SaturatingAdd(stabilization, marketMaker)
	if allocated > magnitude {
		// Ratios sum to <= 1 and shares truncate, so this needs a rounding
		// anomaly to trigger; the stabilization share always absorbs it.
		stabilization = fixedpoint.SaturatingSub(stabilization, allocated-magnitude)
		allocated = magnitude
	}

	return domain.DistributionPlan{
		Stabilization: stabilization,
		MarketMaker:   marketMaker,
		Unallocated:   magnitude - allocated,
	}
}

// PlanContraction funds a burn magnitude preferentially from the market-maker
// reserve up to its available amount, then from the stabilization reserve.
// Contraction is expected to be funded by the parties who benefited from
// prior expansions. Whatever neither account can cover stays unallocated and
// is skipped, surfaced in the adjustment record.
func (p *DistributionPolicy) PlanContraction(magnitude uint64, funding BurnFunding) domain.DistributionPlan {
	if magnitude == 0 {
		return domain.DistributionPlan{}
	}

	marketMaker := magnitude
	if funding.MarketMakerReserved < marketMaker {
		marketMaker = funding.MarketMakerReserved
	}

	shortfall := magnitude - marketMaker
	stabilization := shortfall
	if funding.StabilizationReserved < stabilization {
		stabilization = funding.StabilizationReserved
	}

	return domain.DistributionPlan{
		Stabilization: stabilization,
		MarketMaker:   marketMaker,
		Unallocated:   shortfall - stabilization,
	}
}
