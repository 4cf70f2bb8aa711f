// Package orchestrator drives the full stress-test pipeline across a
// catalog subset: transform, simulate, reduce, score, analyze.
package orchestrator

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MEMAtest/stress-engine/internal/catalog"
	"github.com/MEMAtest/stress-engine/internal/domain"
	"github.com/MEMAtest/stress-engine/internal/risk"
	"github.com/MEMAtest/stress-engine/internal/simulation"
	"github.com/MEMAtest/stress-engine/internal/stress"
)

const (
	// DefaultTrialCount is the number of Monte Carlo trials per scenario
	// when the caller does not specify one.
	DefaultTrialCount = 1000

	defaultWorkers = 4
)

// Config holds the runner's collaborators and tuning knobs. Zero values
// fall back to the built-in catalog, the internal Monte Carlo engine, and
// the defaults above.
type Config struct {
	Catalog    *catalog.Catalog
	Engine     simulation.Engine
	TrialCount int
	Workers    int
	Seed       int64
	Log        zerolog.Logger
}

// Runner executes stress tests. Scenarios run on a bounded worker pool;
// results are collected into position-indexed slots so output order always
// matches selection order regardless of completion order.
type Runner struct {
	catalog    *catalog.Catalog
	adapter    *simulation.Adapter
	trialCount int
	workers    int
	log        zerolog.Logger
}

// New creates a runner.
func New(cfg Config) *Runner {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Engine == nil {
		cfg.Engine = simulation.NewMonteCarloEngine(cfg.Seed)
	}
	if cfg.TrialCount <= 0 {
		cfg.TrialCount = DefaultTrialCount
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return &Runner{
		catalog:    cfg.Catalog,
		adapter:    simulation.NewAdapter(cfg.Engine),
		trialCount: cfg.TrialCount,
		workers:    cfg.Workers,
		log:        cfg.Log.With().Str("component", "stress_runner").Logger(),
	}
}

// Catalog exposes the runner's scenario catalog for selection surfaces.
func (r *Runner) Catalog() *catalog.Catalog { return r.catalog }

// Run stress-tests the baseline against the selected scenario ids, or the
// whole catalog when none are given. A failure in one scenario's pipeline
// is logged and that scenario omitted; the batch never aborts. The returned
// list preserves selection order, so fewer results than requested ids means
// "those scenarios could not be evaluated", not a hard error.
func (r *Runner) Run(ctx context.Context, baseline *domain.ClientScenario, scenarioIDs []string) []domain.StressTestResult {
	selected := r.selectScenarios(scenarioIDs)
	if len(selected) == 0 {
		return nil
	}

	type job struct {
		slot     int
		scenario domain.StressScenario
	}

	slots := make([]*domain.StressTestResult, len(selected))
	jobs := make(chan job)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				result, err := r.runScenario(ctx, baseline, j.scenario)
				if err != nil {
					r.log.Warn().
						Err(err).
						Str("scenario_id", j.scenario.ID).
						Msg("stress scenario dropped")
					continue
				}
				slots[j.slot] = result
			}
		}()
	}

	for i, sc := range selected {
		jobs <- job{slot: i, scenario: sc}
	}
	close(jobs)
	wg.Wait()

	results := make([]domain.StressTestResult, 0, len(selected))
	for _, res := range slots {
		if res != nil {
			results = append(results, *res)
		}
	}
	return results
}

// selectScenarios resolves the requested subset in request order; unknown
// ids are logged and skipped.
func (r *Runner) selectScenarios(scenarioIDs []string) []domain.StressScenario {
	if len(scenarioIDs) == 0 {
		return r.catalog.List()
	}

	selected := make([]domain.StressScenario, 0, len(scenarioIDs))
	for _, id := range scenarioIDs {
		sc, ok := r.catalog.Get(id)
		if !ok {
			r.log.Warn().Str("scenario_id", id).Msg("unknown stress scenario requested")
			continue
		}
		selected = append(selected, sc)
	}
	return selected
}

// runScenario runs the full pipeline for one catalog entry.
func (r *Runner) runScenario(ctx context.Context, baseline *domain.ClientScenario, sc domain.StressScenario) (*domain.StressTestResult, error) {
	stressed, err := stress.Apply(baseline, sc)
	if err != nil {
		return nil, err
	}

	input := simulation.BuildInput(stressed, r.trialCount)
	mcResults, err := r.adapter.Run(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics := risk.ComputeMetrics(mcResults)

	return &domain.StressTestResult{
		ScenarioID:          sc.ID,
		ScenarioName:        sc.Name,
		Category:            sc.Category,
		Severity:            sc.Severity,
		SurvivalProbability: metrics.SurvivalProbability,
		ShortfallRisk:       metrics.ShortfallRisk,
		WorstCaseOutcome:    metrics.WorstCaseOutcome,
		ResilienceScore:     risk.ResilienceScore(sc, metrics, mcResults),
		RecoveryTimeYears:   risk.RecoveryTime(sc),
		Impact:              risk.AnalyzeImpact(baseline, stressed),
		MitigationPriority:  risk.MitigationPriority(sc, metrics.SurvivalProbability),
		Metrics:             metrics,
	}, nil
}
