package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Annualized return volatility per asset class, percent. Long-run figures
// in line with the planning assumptions used elsewhere in the platform.
const (
	equityVolatility      = 17.0
	bondVolatility        = 6.0
	cashVolatility        = 1.0
	alternativeVolatility = 12.0
)

// neutralRiskScore is the score at which no volatility adjustment applies.
const neutralRiskScore = 5

// MonteCarloEngine is the built-in forward path generator: normally
// distributed annual returns per asset class, inflation-growing
// withdrawals. The seed fully determines the trial set; each trial derives
// its own sub-source from seed and trial id so parallel generation stays
// deterministic.
type MonteCarloEngine struct {
	seed int64
}

// NewMonteCarloEngine creates an engine whose output is reproducible for a
// given seed.
func NewMonteCarloEngine(seed int64) *MonteCarloEngine {
	return &MonteCarloEngine{seed: seed}
}

// Simulate generates input.TrialCount independent wealth paths.
func (e *MonteCarloEngine) Simulate(ctx context.Context, input domain.SimulationInput) ([]TrialPath, error) {
	if input.TrialCount <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", input.TrialCount)
	}
	if input.HorizonYears <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", input.HorizonYears)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trials := make([]TrialPath, input.TrialCount)

	var wg sync.WaitGroup
	for i := 0; i < input.TrialCount; i++ {
		wg.Add(1)
		go func(trialID int) {
			defer wg.Done()
			trials[trialID] = e.runTrial(input, trialID)
		}(i)
	}
	wg.Wait()

	return trials, nil
}

// runTrial walks one path: each year the portfolio earns a sampled nominal
// return, then the withdrawal (grown with inflation) is taken. Once wealth
// goes to zero or below it stays depleted; the path keeps recording so the
// adapter can read shortfall years off the trajectory.
func (e *MonteCarloEngine) runTrial(input domain.SimulationInput, trialID int) TrialPath {
	rng := rand.New(rand.NewSource(e.seed + int64(trialID)))

	volScale := volatilityScale(input.RiskScore)
	inflation := input.InflationRate.InexactFloat64() / 100

	wealth := input.InitialWealth.InexactFloat64()
	withdrawal := input.AnnualWithdrawal.InexactFloat64()
	peak := wealth
	maxDrawdown := 0.0

	yearly := make([]decimal.Decimal, input.HorizonYears)
	for year := 0; year < input.HorizonYears; year++ {
		if wealth > 0 {
			wealth *= 1 + e.sampleReturn(rng, input, volScale)
		}
		wealth -= withdrawal
		if wealth < 0 {
			wealth = 0
		}
		withdrawal *= 1 + inflation

		if wealth > peak {
			peak = wealth
		}
		if peak > 0 {
			drawdown := (peak - wealth) / peak * 100
			if drawdown > maxDrawdown {
				maxDrawdown = drawdown
			}
		}
		yearly[year] = decimal.NewFromFloat(wealth)
	}

	return TrialPath{
		FinalWealth:  decimal.NewFromFloat(wealth),
		YearlyWealth: yearly,
		Success:      wealth > 0,
		MaxDrawdown:  decimal.NewFromFloat(maxDrawdown),
	}
}

// sampleReturn draws the portfolio's nominal return for one year as the
// allocation-weighted sum of per-class normal draws.
func (e *MonteCarloEngine) sampleReturn(rng *rand.Rand, input domain.SimulationInput, volScale float64) float64 {
	draw := func(meanPct, volPct float64) float64 {
		return (rng.NormFloat64()*volPct*volScale + meanPct) / 100
	}

	mix := input.Allocation
	return mix.Equity*draw(input.Returns.Equity.InexactFloat64(), equityVolatility) +
		mix.Bonds*draw(input.Returns.Bonds.InexactFloat64(), bondVolatility) +
		mix.Cash*draw(input.Returns.Cash.InexactFloat64(), cashVolatility) +
		mix.Alternatives*draw(input.Returns.Alternatives.InexactFloat64(), alternativeVolatility)
}

// volatilityScale converts a 1-10 risk score into a multiplier on asset
// volatility, 5 being neutral.
func volatilityScale(riskScore int) float64 {
	if riskScore <= 0 {
		return 1
	}
	scale := 1 + float64(riskScore-neutralRiskScore)*0.05
	if scale < 0.5 {
		return 0.5
	}
	return scale
}
