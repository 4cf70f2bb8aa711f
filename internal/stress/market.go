package stress

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/allocation"
	"github.com/MEMAtest/stress-engine/internal/domain"
)

// MarketShock covers every scenario type whose effect is a one-off decline
// in asset values: market crashes, recessions, sector collapses,
// geopolitical shocks and currency crises. The portfolio-weighted shock is
// computed from the normalized allocation and the per-class decline
// parameters, then applied to investment and pension values; savings only
// move when a cash decline is specified.
type MarketShock struct {
	ScenarioID    string
	EquityDecline decimal.Decimal // percent, negative for a loss
	BondDecline   decimal.Decimal
	CashDecline   decimal.Decimal
}

func newMarketShock(sc domain.StressScenario) *MarketShock {
	return &MarketShock{
		ScenarioID:    sc.ID,
		EquityDecline: sc.ParamOr("equity_decline", decimal.Zero),
		BondDecline:   sc.ParamOr("bond_decline", decimal.Zero),
		CashDecline:   sc.ParamOr("cash_decline", decimal.Zero),
	}
}

func (ms *MarketShock) Name() string { return "market_shock" }

func (ms *MarketShock) Validate(base *domain.ClientScenario) error {
	return validateBase(ms.Name(), base)
}

func (ms *MarketShock) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()

	mix := allocation.FromScenario(base)
	weightedShock := decimal.NewFromFloat(mix.Equity).Mul(ms.EquityDecline).
		Add(decimal.NewFromFloat(mix.Bonds).Mul(ms.BondDecline))

	multiplier := decimal.NewFromInt(1).Add(asFraction(weightedShock))
	stressed.InvestmentValue = base.InvestmentValue.Mul(multiplier)
	stressed.PensionValue = base.PensionValue.Mul(multiplier)
	stressed.PensionPotValue = base.PensionPotValue.Mul(multiplier)

	// Savings follow the cash-weighted residual of the shock.
	cashShock := decimal.NewFromFloat(mix.Cash).Mul(ms.CashDecline)
	savingsMultiplier := decimal.NewFromInt(1).Add(asFraction(cashShock))
	stressed.CurrentSavings = base.CurrentSavings.Mul(savingsMultiplier)

	return stressed, nil
}
