package stress

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Personal crisis scenario ids with dedicated transforms. A personal_crisis
// catalog entry whose id is not listed here is rejected the same way as an
// unknown scenario type.
const (
	ScenarioJobLoss         = "job_loss_redundancy"
	ScenarioHealthEvent     = "major_health_event"
	ScenarioDivorce         = "divorce_separation"
	ScenarioEarlyRetirement = "forced_early_retirement"
)

func forPersonalCrisis(sc domain.StressScenario) (StressTransform, error) {
	switch sc.ID {
	case ScenarioJobLoss:
		return newJobLoss(sc), nil
	case ScenarioHealthEvent:
		return newHealthEvent(sc), nil
	case ScenarioDivorce:
		return newDivorce(sc), nil
	case ScenarioEarlyRetirement:
		return newEarlyRetirement(sc), nil
	default:
		return nil, fmt.Errorf("%w: personal crisis scenario %q has no transform", ErrUnsupportedType, sc.ID)
	}
}

// JobLoss replaces earned income with an unemployment benefit fraction of
// the prior monthly income, credits a one-off severance payment to savings,
// and scales expenses for out-of-pocket healthcare.
type JobLoss struct {
	SeveranceMonths          decimal.Decimal
	UnemploymentBenefitPct   decimal.Decimal // percent of prior income
	HealthcareCostMultiplier decimal.Decimal // applied to expenses, default 1
}

func newJobLoss(sc domain.StressScenario) *JobLoss {
	return &JobLoss{
		SeveranceMonths:          sc.ParamOr("severance_months", decimal.Zero),
		UnemploymentBenefitPct:   sc.ParamOr("unemployment_benefit_percent", decimal.Zero),
		HealthcareCostMultiplier: sc.ParamOr("healthcare_cost_multiplier", decimal.NewFromInt(1)),
	}
}

func (jl *JobLoss) Name() string { return "job_loss" }

func (jl *JobLoss) Validate(base *domain.ClientScenario) error {
	return validateBase(jl.Name(), base)
}

func (jl *JobLoss) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()

	monthlyIncome := base.CurrentIncome.Div(decimal.NewFromInt(12))
	stressed.CurrentIncome = base.CurrentIncome.Mul(asFraction(jl.UnemploymentBenefitPct))
	stressed.CurrentSavings = base.CurrentSavings.Add(monthlyIncome.Mul(jl.SeveranceMonths))
	stressed.CurrentExpenses = base.CurrentExpenses.Mul(jl.HealthcareCostMultiplier)

	return stressed, nil
}

// HealthEvent reduces earnings by a percentage and adds both a one-off
// emergency expense and an ongoing annual care cost to expenses.
type HealthEvent struct {
	IncomeReductionPct decimal.Decimal
	EmergencyExpense   decimal.Decimal
	AnnualCareCost     decimal.Decimal
}

func newHealthEvent(sc domain.StressScenario) *HealthEvent {
	return &HealthEvent{
		IncomeReductionPct: sc.ParamOr("income_reduction_percent", decimal.Zero),
		EmergencyExpense:   sc.ParamOr("emergency_expense", decimal.Zero),
		AnnualCareCost:     sc.ParamOr("annual_care_cost", decimal.Zero),
	}
}

func (he *HealthEvent) Name() string { return "major_health_event" }

func (he *HealthEvent) Validate(base *domain.ClientScenario) error {
	return validateBase(he.Name(), base)
}

func (he *HealthEvent) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()

	retained := decimal.NewFromInt(1).Sub(asFraction(he.IncomeReductionPct))
	stressed.CurrentIncome = base.CurrentIncome.Mul(retained)
	stressed.CurrentExpenses = base.CurrentExpenses.Add(he.EmergencyExpense).Add(he.AnnualCareCost)

	return stressed, nil
}

// Divorce scales savings, pension and investment values by the settlement
// fraction retained, deducts legal costs from savings, and scales expenses
// up for single-household living.
type Divorce struct {
	SettlementPct      decimal.Decimal // percent of assets retained
	LegalCosts         decimal.Decimal
	ExpenseIncreasePct decimal.Decimal
}

func newDivorce(sc domain.StressScenario) *Divorce {
	return &Divorce{
		SettlementPct:      sc.ParamOr("settlement_percent", decimal.NewFromInt(100)),
		LegalCosts:         sc.ParamOr("legal_costs", decimal.Zero),
		ExpenseIncreasePct: sc.ParamOr("expense_increase_percent", decimal.Zero),
	}
}

func (d *Divorce) Name() string { return "divorce_separation" }

func (d *Divorce) Validate(base *domain.ClientScenario) error {
	return validateBase(d.Name(), base)
}

func (d *Divorce) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()

	retained := asFraction(d.SettlementPct)
	stressed.PensionValue = base.PensionValue.Mul(retained)
	stressed.PensionPotValue = base.PensionPotValue.Mul(retained)
	stressed.InvestmentValue = base.InvestmentValue.Mul(retained)

	savings := base.CurrentSavings.Mul(retained).Sub(d.LegalCosts)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	stressed.CurrentSavings = savings

	multiplier := decimal.NewFromInt(1).Add(asFraction(d.ExpenseIncreasePct))
	stressed.CurrentExpenses = base.CurrentExpenses.Mul(multiplier)

	return stressed, nil
}

// EarlyRetirement zeroes earned income, applies an early-access penalty to
// the pension, adds bridge healthcare costs until state provision begins,
// and discounts the equity return for sequence-of-returns risk.
type EarlyRetirement struct {
	PensionPenaltyPct    decimal.Decimal
	BridgeHealthcareCost decimal.Decimal
	SequenceRiskDiscount decimal.Decimal // percentage points off the equity return
}

func newEarlyRetirement(sc domain.StressScenario) *EarlyRetirement {
	return &EarlyRetirement{
		PensionPenaltyPct:    sc.ParamOr("pension_penalty_percent", decimal.Zero),
		BridgeHealthcareCost: sc.ParamOr("bridge_healthcare_cost", decimal.Zero),
		SequenceRiskDiscount: sc.ParamOr("sequence_risk_discount", decimal.Zero),
	}
}

func (er *EarlyRetirement) Name() string { return "forced_early_retirement" }

func (er *EarlyRetirement) Validate(base *domain.ClientScenario) error {
	return validateBase(er.Name(), base)
}

func (er *EarlyRetirement) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()

	stressed.CurrentIncome = decimal.Zero

	retained := decimal.NewFromInt(1).Sub(asFraction(er.PensionPenaltyPct))
	stressed.PensionValue = base.PensionValue.Mul(retained)
	stressed.PensionPotValue = base.PensionPotValue.Mul(retained)

	stressed.CurrentExpenses = base.CurrentExpenses.Add(er.BridgeHealthcareCost)
	stressed.EquityReturn = base.EquityReturn.Sub(er.SequenceRiskDiscount)

	return stressed, nil
}
