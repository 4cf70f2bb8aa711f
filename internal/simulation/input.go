// Package simulation maps stressed scenarios into simulation-engine inputs,
// defines the engine boundary, and normalizes engine output into the
// internal Monte Carlo result shape.
package simulation

import (
	"github.com/MEMAtest/stress-engine/internal/allocation"
	"github.com/MEMAtest/stress-engine/internal/domain"
)

// BuildInput maps a (stressed) client scenario into the simulation engine's
// input contract. The engine operates in nominal terms, so each asset
// class's real return has the scenario inflation rate added back.
func BuildInput(cs *domain.ClientScenario, trialCount int) domain.SimulationInput {
	return domain.SimulationInput{
		InitialWealth:    cs.CurrentSavings.Add(cs.InvestmentValue).Add(cs.PensionPot()),
		HorizonYears:     cs.ProjectionYears,
		AnnualWithdrawal: cs.WithdrawalNeed(),
		RiskScore:        cs.RiskScore,
		InflationRate:    cs.InflationRate,
		TrialCount:       trialCount,
		Allocation:       allocation.FromScenario(cs),
		Returns: domain.AssetReturns{
			Equity:       cs.EquityReturn.Add(cs.InflationRate),
			Bonds:        cs.BondReturn.Add(cs.InflationRate),
			Cash:         cs.CashReturn.Add(cs.InflationRate),
			Alternatives: cs.AlternativeReturn.Add(cs.InflationRate),
		},
	}
}
