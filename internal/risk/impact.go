package risk

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// AnalyzeImpact computes the relative deltas between baseline and stressed
// scenario used in reports. Declines are clamped to be non-positive and the
// expense delta non-negative so a transform that happens to improve a field
// reports a zero impact rather than a negative one. A zero baseline
// denominator yields a zero delta instead of dividing by zero.
func AnalyzeImpact(baseline, stressed *domain.ClientScenario) domain.ImpactAnalysis {
	return domain.ImpactAnalysis{
		PortfolioDeclinePercent: clampMax(relativeChange(baseline.EquityReturn, stressed.EquityReturn), decimal.Zero),
		IncomeReductionPercent:  clampMax(relativeChange(baseline.CurrentIncome, stressed.CurrentIncome), decimal.Zero),
		ExpenseIncreasePercent:  clampMin(relativeChange(baseline.CurrentExpenses, stressed.CurrentExpenses), decimal.Zero),
	}
}

// relativeChange returns (stressed-baseline)/baseline as a percent, or zero
// when the baseline is zero.
func relativeChange(baseline, stressed decimal.Decimal) decimal.Decimal {
	if baseline.IsZero() {
		return decimal.Zero
	}
	return stressed.Sub(baseline).Div(baseline).Mul(oneHundred)
}

func clampMax(d, max decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(max) {
		return max
	}
	return d
}

func clampMin(d, min decimal.Decimal) decimal.Decimal {
	if d.LessThan(min) {
		return min
	}
	return d
}
