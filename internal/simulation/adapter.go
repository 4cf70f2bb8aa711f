package simulation

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Adapter invokes a simulation engine and translates its per-trial output
// into MonteCarloResults: shortfall years re-derived from each trajectory,
// aggregates built from the sorted final values.
type Adapter struct {
	engine Engine
}

// NewAdapter wraps an engine.
func NewAdapter(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

// Run executes the engine and builds the aggregate summary. An engine
// failure propagates to the caller; the orchestrator isolates it to the
// scenario being simulated.
func (a *Adapter) Run(ctx context.Context, input domain.SimulationInput) (*domain.MonteCarloResults, error) {
	paths, err := a.engine.Simulate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("simulation engine: %w", err)
	}

	trials := make([]domain.MonteCarloTrial, len(paths))
	finals := make([]float64, len(paths))
	successes := 0
	maxDrawdown := decimal.Zero

	for i, p := range paths {
		trials[i] = domain.MonteCarloTrial{
			TrialID:        i,
			FinalWealth:    p.FinalWealth,
			YearlyWealth:   p.YearlyWealth,
			ShortfallYears: shortfallYears(p.YearlyWealth),
			Success:        p.Success,
			MaxDrawdown:    p.MaxDrawdown,
		}
		finals[i] = p.FinalWealth.InexactFloat64()
		if p.Success {
			successes++
		}
		if p.MaxDrawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = p.MaxDrawdown
		}
	}

	results := &domain.MonteCarloResults{
		Trials:      trials,
		MaxDrawdown: maxDrawdown,
	}
	if len(finals) == 0 {
		return results, nil
	}

	sort.Float64s(finals)
	results.SuccessProbability = decimal.NewFromFloat(
		float64(successes) / float64(len(finals)) * 100)
	results.AverageFinalWealth = decimal.NewFromFloat(stat.Mean(finals, nil))
	results.ConfidenceIntervals = confidenceIntervals(finals)

	return results, nil
}

// confidenceIntervals reads the p10..p90 percentiles positionally from the
// sorted final values; empirical quantiles of sorted data are monotonically
// non-decreasing by construction.
func confidenceIntervals(sortedFinals []float64) domain.ConfidenceIntervals {
	q := func(p float64) decimal.Decimal {
		return decimal.NewFromFloat(stat.Quantile(p, stat.Empirical, sortedFinals, nil))
	}
	return domain.ConfidenceIntervals{
		P10: q(0.10),
		P25: q(0.25),
		P50: q(0.50),
		P75: q(0.75),
		P90: q(0.90),
	}
}

// shortfallYears lists each projection year (1-based) in which the path's
// wealth was at or below zero.
func shortfallYears(yearly []decimal.Decimal) []int {
	var years []int
	for i, w := range yearly {
		if !w.IsPositive() {
			years = append(years, i+1)
		}
	}
	return years
}
