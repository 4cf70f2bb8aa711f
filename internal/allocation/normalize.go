// Package allocation turns raw asset-allocation weights into a normalized
// mix usable by shock propagation and simulation-input construction.
package allocation

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Fallback mix used when the raw weights sum to zero or less. Returning a
// conventional 60/30/10 balanced mix instead of dividing by zero means a
// record with missing allocation data still simulates; callers that care
// about data quality must validate upstream.
var fallbackMix = domain.AssetMix{Equity: 0.6, Bonds: 0.3, Cash: 0.1, Alternatives: 0}

// Normalize converts four raw non-negative weights (any scale, typically
// percent) into fractions summing to 1, preserving relative proportions.
func Normalize(equity, bonds, cash, alternatives decimal.Decimal) domain.AssetMix {
	e := nonNegative(equity)
	b := nonNegative(bonds)
	c := nonNegative(cash)
	a := nonNegative(alternatives)

	total := e + b + c + a
	if total <= 0 {
		return fallbackMix
	}

	return domain.AssetMix{
		Equity:       e / total,
		Bonds:        b / total,
		Cash:         c / total,
		Alternatives: a / total,
	}
}

// FromScenario normalizes a scenario's allocation fields.
func FromScenario(cs *domain.ClientScenario) domain.AssetMix {
	return Normalize(cs.EquityAllocation, cs.BondAllocation, cs.CashAllocation, cs.AlternativeAllocation)
}

func nonNegative(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if f < 0 {
		return 0
	}
	return f
}
