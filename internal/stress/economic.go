package stress

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// InflationShock raises the assumed inflation rate, erodes real returns on
// equities and bonds, and scales living expenses.
type InflationShock struct {
	ScenarioID        string
	InflationIncrease decimal.Decimal // percentage points added to inflation
	RealReturnErosion decimal.Decimal // percentage points taken off equity/bond real returns
	ExpenseMultiplier decimal.Decimal // applied to current expenses, default 1
}

func newInflationShock(sc domain.StressScenario) *InflationShock {
	return &InflationShock{
		ScenarioID:        sc.ID,
		InflationIncrease: sc.ParamOr("inflation_increase", decimal.Zero),
		RealReturnErosion: sc.ParamOr("real_return_erosion", decimal.Zero),
		ExpenseMultiplier: sc.ParamOr("expense_multiplier", decimal.NewFromInt(1)),
	}
}

func (is *InflationShock) Name() string { return "inflation_shock" }

func (is *InflationShock) Validate(base *domain.ClientScenario) error {
	return validateBase(is.Name(), base)
}

func (is *InflationShock) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()
	stressed.InflationRate = base.InflationRate.Add(is.InflationIncrease)
	stressed.EquityReturn = base.EquityReturn.Sub(is.RealReturnErosion)
	stressed.BondReturn = base.BondReturn.Sub(is.RealReturnErosion)
	stressed.CurrentExpenses = base.CurrentExpenses.Mul(is.ExpenseMultiplier)
	return stressed, nil
}

// RateShock models an interest-rate regime change. Exactly one of the two
// parameters is normally present: a rate increase lifts bond and cash real
// returns, a rate floor clamps the cash return from below.
type RateShock struct {
	ScenarioID   string
	RateIncrease decimal.Decimal
	hasIncrease  bool
	RateFloor    decimal.Decimal
	hasFloor     bool
}

func newRateShock(sc domain.StressScenario) *RateShock {
	rs := &RateShock{ScenarioID: sc.ID}
	rs.RateIncrease, rs.hasIncrease = sc.Param("rate_increase")
	rs.RateFloor, rs.hasFloor = sc.Param("rate_floor")
	return rs
}

func (rs *RateShock) Name() string { return "interest_rate_shock" }

func (rs *RateShock) Validate(base *domain.ClientScenario) error {
	return validateBase(rs.Name(), base)
}

func (rs *RateShock) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()
	switch {
	case rs.hasIncrease:
		stressed.BondReturn = base.BondReturn.Add(rs.RateIncrease)
		stressed.CashReturn = base.CashReturn.Add(rs.RateIncrease)
	case rs.hasFloor:
		if base.CashReturn.LessThan(rs.RateFloor) {
			stressed.CashReturn = rs.RateFloor
		}
	}
	return stressed, nil
}

// CommodityShock feeds a commodity price spike into headline inflation and
// scales expenses by the transport-cost increase.
type CommodityShock struct {
	ScenarioID            string
	PriceSpike            decimal.Decimal // percentage points added to inflation
	TransportCostIncrease decimal.Decimal // fraction, e.g. 0.15 for +15% expenses
}

func newCommodityShock(sc domain.StressScenario) *CommodityShock {
	return &CommodityShock{
		ScenarioID:            sc.ID,
		PriceSpike:            sc.ParamOr("price_spike", decimal.Zero),
		TransportCostIncrease: sc.ParamOr("transport_cost_increase", decimal.Zero),
	}
}

func (cs *CommodityShock) Name() string { return "commodity_shock" }

func (cs *CommodityShock) Validate(base *domain.ClientScenario) error {
	return validateBase(cs.Name(), base)
}

func (cs *CommodityShock) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()
	stressed.InflationRate = base.InflationRate.Add(cs.PriceSpike)
	multiplier := decimal.NewFromInt(1).Add(cs.TransportCostIncrease)
	stressed.CurrentExpenses = base.CurrentExpenses.Mul(multiplier)
	return stressed, nil
}
