package domain

import (
	"github.com/shopspring/decimal"
)

// ClientScenario represents a client's cash-flow projection inputs: the
// baseline supplied by the scenario-persistence service, or a stressed copy
// produced by a stress transform. All rates and returns are expressed in
// percent units (2.5 means 2.5%); monetary amounts are annual unless noted.
type ClientScenario struct {
	ID          string `yaml:"id" json:"id"`
	ClientName  string `yaml:"client_name" json:"clientName"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Cash flow
	CurrentIncome          decimal.Decimal `yaml:"current_income" json:"currentIncome"`
	CurrentExpenses        decimal.Decimal `yaml:"current_expenses" json:"currentExpenses"`
	RetirementIncomeTarget decimal.Decimal `yaml:"retirement_income_target" json:"retirementIncomeTarget"`

	// Wealth
	CurrentSavings  decimal.Decimal `yaml:"current_savings" json:"currentSavings"`
	PensionValue    decimal.Decimal `yaml:"pension_value" json:"pensionValue"`
	PensionPotValue decimal.Decimal `yaml:"pension_pot_value" json:"pensionPotValue"`
	InvestmentValue decimal.Decimal `yaml:"investment_value" json:"investmentValue"`

	// Guaranteed income in retirement
	StatePensionAmount    decimal.Decimal `yaml:"state_pension_amount" json:"statePensionAmount"`
	OtherGuaranteedIncome decimal.Decimal `yaml:"other_guaranteed_income" json:"otherGuaranteedIncome"`

	// Asset allocation, raw weights (need not sum to 100)
	EquityAllocation      decimal.Decimal `yaml:"equity_allocation" json:"equityAllocation"`
	BondAllocation        decimal.Decimal `yaml:"bond_allocation" json:"bondAllocation"`
	CashAllocation        decimal.Decimal `yaml:"cash_allocation" json:"cashAllocation"`
	AlternativeAllocation decimal.Decimal `yaml:"alternative_allocation" json:"alternativeAllocation"`

	// Real return assumptions per asset class, percent
	EquityReturn      decimal.Decimal `yaml:"equity_return" json:"equityReturn"`
	BondReturn        decimal.Decimal `yaml:"bond_return" json:"bondReturn"`
	CashReturn        decimal.Decimal `yaml:"cash_return" json:"cashReturn"`
	AlternativeReturn decimal.Decimal `yaml:"alternative_return" json:"alternativeReturn"`

	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`

	ProjectionYears int `yaml:"projection_years" json:"projectionYears"`
	RetirementAge   int `yaml:"retirement_age" json:"retirementAge"`
	LifeExpectancy  int `yaml:"life_expectancy" json:"lifeExpectancy"`
	RiskScore       int `yaml:"risk_score" json:"riskScore"`
}

// DeepCopy returns an independent copy of the scenario. Every field is a
// value type, so a shallow copy is a full copy; the method exists so that
// transforms state their copy-before-modify contract explicitly.
func (cs *ClientScenario) DeepCopy() *ClientScenario {
	copied := *cs
	return &copied
}

// PensionPot returns whichever pension field is populated. Some upstream
// records carry the pot under pension_value, newer ones under
// pension_pot_value; when both are set they describe the same pot and the
// larger figure is the current valuation.
func (cs *ClientScenario) PensionPot() decimal.Decimal {
	if cs.PensionPotValue.GreaterThan(cs.PensionValue) {
		return cs.PensionPotValue
	}
	return cs.PensionValue
}

// GuaranteedIncome returns the annual income that arrives regardless of
// portfolio performance.
func (cs *ClientScenario) GuaranteedIncome() decimal.Decimal {
	return cs.StatePensionAmount.Add(cs.OtherGuaranteedIncome)
}

// WithdrawalNeed returns the annual amount that must come out of the
// portfolio: the retirement income target (falling back to current expenses
// when no target is set) minus guaranteed income, floored at zero.
func (cs *ClientScenario) WithdrawalNeed() decimal.Decimal {
	target := cs.RetirementIncomeTarget
	if target.IsZero() {
		target = cs.CurrentExpenses
	}
	need := target.Sub(cs.GuaranteedIncome())
	if need.IsNegative() {
		return decimal.Zero
	}
	return need
}
