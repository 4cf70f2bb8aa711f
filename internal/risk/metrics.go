// Package risk reduces Monte Carlo trial sets into risk metrics and scores
// them for advisor follow-up.
package risk

import (
	"math"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeMetrics reduces a trial set into the headline risk figures. An
// empty trial set yields zero metrics rather than an error; degenerate
// inputs are expected at this layer.
func ComputeMetrics(results *domain.MonteCarloResults) domain.RiskMetrics {
	if results == nil || len(results.Trials) == 0 {
		return domain.RiskMetrics{}
	}

	finals := make([]float64, len(results.Trials))
	surviving := 0
	for i, trial := range results.Trials {
		finals[i] = trial.FinalWealth.InexactFloat64()
		if trial.FinalWealth.IsPositive() {
			surviving++
		}
	}

	survival := decimal.NewFromFloat(
		float64(surviving) / float64(len(finals)) * 100)

	// Population standard deviation: second central moment, no sample
	// correction.
	mean := stat.Mean(finals, nil)
	stdDev := math.Sqrt(stat.MomentAbout(2, finals, mean, nil))

	return domain.RiskMetrics{
		SurvivalProbability: survival,
		ShortfallRisk:       oneHundred.Sub(survival),
		WorstCaseOutcome:    decimal.NewFromFloat(floats.Min(finals)),
		StandardDeviation:   decimal.NewFromFloat(stdDev),
		ConfidenceIntervals: results.ConfidenceIntervals,
	}
}
