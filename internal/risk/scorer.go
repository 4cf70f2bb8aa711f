package risk

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Severity weights for the resilience score. Personal-risk scenarios are
// weighted less punitively because their recovery paths differ from market
// events.
var (
	personalSeverityWeights = map[domain.Severity]decimal.Decimal{
		domain.SeveritySevere:   decimal.NewFromFloat(0.6),
		domain.SeverityModerate: decimal.NewFromFloat(0.8),
		domain.SeverityMild:     decimal.NewFromInt(1),
	}
	marketSeverityWeights = map[domain.Severity]decimal.Decimal{
		domain.SeveritySevere:   decimal.NewFromFloat(0.5),
		domain.SeverityModerate: decimal.NewFromFloat(0.75),
		domain.SeverityMild:     decimal.NewFromInt(1),
	}

	recoveryBonus = decimal.NewFromInt(15)
	outcomeBonus  = decimal.NewFromInt(10)
)

// Fixed recovery-time lookup for personal-risk scenarios, years. Forced
// early retirement is a permanent state change and has no entry.
var personalRecoveryYears = map[string]int{
	"job_loss_redundancy": 1,
	"major_health_event":  2,
	"divorce_separation":  3,
}

// Severity multipliers for recovery time on non-personal scenarios.
var severityRecoveryMultipliers = map[domain.Severity]float64{
	domain.SeveritySevere:   2,
	domain.SeverityModerate: 1.5,
	domain.SeverityMild:     1,
}

// ResilienceScore rates how well the client's plan withstands the scenario,
// 0-100. Personal-risk scenarios earn a recovery bonus when the median
// outcome stays positive; all other categories earn an outcome bonus when
// the average outcome stays positive.
func ResilienceScore(sc domain.StressScenario, metrics domain.RiskMetrics, results *domain.MonteCarloResults) decimal.Decimal {
	var score decimal.Decimal

	if sc.Category == domain.CategoryPersonalRisk {
		score = metrics.SurvivalProbability.Mul(severityWeight(personalSeverityWeights, sc.Severity))
		if metrics.ConfidenceIntervals.P50.IsPositive() {
			score = score.Add(recoveryBonus)
		}
	} else {
		score = metrics.SurvivalProbability.Mul(severityWeight(marketSeverityWeights, sc.Severity))
		if results != nil && results.AverageFinalWealth.IsPositive() {
			score = score.Add(outcomeBonus)
		}
	}

	return clampScore(score)
}

// MitigationPriority assigns the advisor triage tier.
func MitigationPriority(sc domain.StressScenario, survivalProbability decimal.Decimal) domain.MitigationPriority {
	seventy := decimal.NewFromInt(70)
	sixty := decimal.NewFromInt(60)
	eighty := decimal.NewFromInt(80)

	if sc.Category == domain.CategoryPersonalRisk && survivalProbability.LessThan(seventy) {
		return domain.PriorityImmediate
	}
	if sc.Severity == domain.SeveritySevere && survivalProbability.LessThan(sixty) {
		return domain.PriorityImmediate
	}
	if survivalProbability.GreaterThanOrEqual(sixty) && survivalProbability.LessThan(eighty) {
		return domain.PriorityShortTerm
	}
	return domain.PriorityLongTerm
}

// RecoveryTime estimates the years to return to the pre-stress trajectory.
// A nil result means the scenario is a permanent state change with no
// recovery.
func RecoveryTime(sc domain.StressScenario) *int {
	if sc.Category == domain.CategoryPersonalRisk {
		if years, ok := personalRecoveryYears[sc.ID]; ok {
			return &years
		}
		return nil
	}

	multiplier, ok := severityRecoveryMultipliers[sc.Severity]
	if !ok {
		multiplier = 1
	}
	years := int(math.Round(float64(sc.DurationYears) * multiplier))
	return &years
}

func severityWeight(weights map[domain.Severity]decimal.Decimal, severity domain.Severity) decimal.Decimal {
	if w, ok := weights[severity]; ok {
		return w
	}
	return decimal.NewFromInt(1)
}

// clampScore bounds a score to [0, 100] even when a caller feeds an out of
// range survival probability.
func clampScore(score decimal.Decimal) decimal.Decimal {
	if score.IsNegative() {
		return decimal.Zero
	}
	if score.GreaterThan(oneHundred) {
		return oneHundred
	}
	return score
}
