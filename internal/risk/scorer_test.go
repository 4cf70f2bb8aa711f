package risk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

func marketScenario(severity domain.Severity) domain.StressScenario {
	return domain.StressScenario{
		ID:            "market_crash_severe",
		Type:          domain.TypeMarketCrash,
		Category:      domain.CategoryMarketRisk,
		Severity:      severity,
		DurationYears: 2,
	}
}

func personalScenario(id string, severity domain.Severity) domain.StressScenario {
	return domain.StressScenario{
		ID:       id,
		Type:     domain.TypePersonalCrisis,
		Category: domain.CategoryPersonalRisk,
		Severity: severity,
	}
}

func metricsWithSurvival(survival float64) domain.RiskMetrics {
	return domain.RiskMetrics{SurvivalProbability: decimal.NewFromFloat(survival)}
}

func TestResilienceScore_MarketSeverityWeights(t *testing.T) {
	results := &domain.MonteCarloResults{} // zero average, no bonus
	survival := metricsWithSurvival(80)

	tests := []struct {
		severity domain.Severity
		want     float64
	}{
		{domain.SeverityMild, 80},
		{domain.SeverityModerate, 60},
		{domain.SeveritySevere, 40},
	}
	for _, tc := range tests {
		t.Run(string(tc.severity), func(t *testing.T) {
			score := ResilienceScore(marketScenario(tc.severity), survival, results)
			assert.InDelta(t, tc.want, score.InexactFloat64(), 1e-9)
		})
	}
}

func TestResilienceScore_OutcomeBonus(t *testing.T) {
	sc := marketScenario(domain.SeveritySevere)
	survival := metricsWithSurvival(80)

	positive := &domain.MonteCarloResults{AverageFinalWealth: decimal.NewFromInt(1000)}
	score := ResilienceScore(sc, survival, positive)
	assert.InDelta(t, 50, score.InexactFloat64(), 1e-9) // 80*0.5 + 10

	score = ResilienceScore(sc, survival, &domain.MonteCarloResults{})
	assert.InDelta(t, 40, score.InexactFloat64(), 1e-9)
}

func TestResilienceScore_PersonalRecoveryBonus(t *testing.T) {
	sc := personalScenario("job_loss_redundancy", domain.SeveritySevere)
	metrics := metricsWithSurvival(50)
	metrics.ConfidenceIntervals.P50 = decimal.NewFromInt(10000)

	score := ResilienceScore(sc, metrics, nil)
	assert.InDelta(t, 45, score.InexactFloat64(), 1e-9) // 50*0.6 + 15

	metrics.ConfidenceIntervals.P50 = decimal.Zero
	score = ResilienceScore(sc, metrics, nil)
	assert.InDelta(t, 30, score.InexactFloat64(), 1e-9)
}

func TestResilienceScore_ClampedToHundred(t *testing.T) {
	// Out of range survival input still produces a bounded score.
	sc := marketScenario(domain.SeverityMild)
	results := &domain.MonteCarloResults{AverageFinalWealth: decimal.NewFromInt(1)}

	score := ResilienceScore(sc, metricsWithSurvival(150), results)
	assert.True(t, score.Equal(decimal.NewFromInt(100)), "got %s", score)
}

func TestMitigationPriority(t *testing.T) {
	tests := []struct {
		name     string
		scenario domain.StressScenario
		survival float64
		want     domain.MitigationPriority
	}{
		{"personal below 70", personalScenario("divorce_separation", domain.SeverityModerate), 65, domain.PriorityImmediate},
		{"severe below 60", marketScenario(domain.SeveritySevere), 55, domain.PriorityImmediate},
		{"mid band", marketScenario(domain.SeverityModerate), 70, domain.PriorityShortTerm},
		{"comfortable", marketScenario(domain.SeverityModerate), 85, domain.PriorityLongTerm},
		{"severe but surviving", marketScenario(domain.SeveritySevere), 90, domain.PriorityLongTerm},
		{"personal in mid band", personalScenario("job_loss_redundancy", domain.SeverityMild), 75, domain.PriorityShortTerm},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MitigationPriority(tc.scenario, decimal.NewFromFloat(tc.survival))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRecoveryTime_PersonalLookup(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"job_loss_redundancy", 1},
		{"major_health_event", 2},
		{"divorce_separation", 3},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			years := RecoveryTime(personalScenario(tc.id, domain.SeverityModerate))
			require.NotNil(t, years)
			assert.Equal(t, tc.want, *years)
		})
	}
}

func TestRecoveryTime_ForcedEarlyRetirementIsPermanent(t *testing.T) {
	years := RecoveryTime(personalScenario("forced_early_retirement", domain.SeveritySevere))
	assert.Nil(t, years)
}

func TestRecoveryTime_SeverityScalesDuration(t *testing.T) {
	sc := marketScenario(domain.SeveritySevere) // duration 2
	years := RecoveryTime(sc)
	require.NotNil(t, years)
	assert.Equal(t, 4, *years)

	sc.Severity = domain.SeverityModerate
	years = RecoveryTime(sc)
	require.NotNil(t, years)
	assert.Equal(t, 3, *years)

	sc.Severity = domain.SeverityMild
	years = RecoveryTime(sc)
	require.NotNil(t, years)
	assert.Equal(t, 2, *years)
}
