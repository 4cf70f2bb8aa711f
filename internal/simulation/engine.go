package simulation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// TrialPath is one forward path produced by a simulation engine: the
// year-by-year portfolio value over the horizon plus the path's outcome.
type TrialPath struct {
	FinalWealth  decimal.Decimal
	YearlyWealth []decimal.Decimal
	Success      bool
	MaxDrawdown  decimal.Decimal // percent decline from the path's peak
}

// Engine is the forward path-simulation boundary. Implementations generate
// input.TrialCount independent paths; trial generation may be concurrent but
// Simulate returns only once every path has completed.
type Engine interface {
	Simulate(ctx context.Context, input domain.SimulationInput) ([]TrialPath, error)
}
