package domain

import (
	"github.com/shopspring/decimal"
)

// RiskMetrics is the reduction of a trial set into the headline risk
// figures. SurvivalProbability and ShortfallRisk are complements and sum to
// 100 by construction.
type RiskMetrics struct {
	SurvivalProbability decimal.Decimal     `json:"survivalProbability"` // percent
	ShortfallRisk       decimal.Decimal     `json:"shortfallRisk"`       // percent
	WorstCaseOutcome    decimal.Decimal     `json:"worstCaseOutcome"`
	StandardDeviation   decimal.Decimal     `json:"standardDeviation"`
	ConfidenceIntervals ConfidenceIntervals `json:"confidenceIntervals"`
}

// ImpactAnalysis holds the relative deltas between baseline and stressed
// scenario used for reporting. Decline and reduction are reported as <= 0,
// expense increase as >= 0.
type ImpactAnalysis struct {
	PortfolioDeclinePercent decimal.Decimal `json:"portfolioDeclinePercent"`
	IncomeReductionPercent  decimal.Decimal `json:"incomeReductionPercent"`
	ExpenseIncreasePercent  decimal.Decimal `json:"expenseIncreasePercent"`
}

// StressTestResult is the per-scenario output of a stress-test run.
// RecoveryTimeYears is nil for permanent state changes (for example forced
// early retirement), where "recovery" has no meaning.
type StressTestResult struct {
	ScenarioID          string             `json:"scenarioId"`
	ScenarioName        string             `json:"scenarioName"`
	Category            string             `json:"category"`
	Severity            Severity           `json:"severity"`
	SurvivalProbability decimal.Decimal    `json:"survivalProbability"`
	ShortfallRisk       decimal.Decimal    `json:"shortfallRisk"`
	WorstCaseOutcome    decimal.Decimal    `json:"worstCaseOutcome"`
	ResilienceScore     decimal.Decimal    `json:"resilienceScore"`
	RecoveryTimeYears   *int               `json:"recoveryTimeYears,omitempty"`
	Impact              ImpactAnalysis     `json:"impact"`
	MitigationPriority  MitigationPriority `json:"mitigationPriority"`
	Metrics             RiskMetrics        `json:"metrics"`
}
