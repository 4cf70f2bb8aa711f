// Package stress applies catalog stress scenarios to a baseline client
// scenario. Each scenario type has its own transform variant carrying a
// typed parameter record; the catalog's open parameter bag is decoded once
// at dispatch time with explicit defaults, so a missing key is a documented
// zero-effect default rather than a silent surprise.
package stress

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// ErrUnsupportedType is returned when a scenario's type (or a personal
// crisis scenario's id) has no registered transform. The orchestrator logs
// and drops such scenarios instead of applying a weak default treatment.
var ErrUnsupportedType = errors.New("unsupported stress scenario type")

// StressTransform converts a baseline scenario into a stressed one. The
// baseline is never mutated; Apply returns an independent copy.
type StressTransform interface {
	// Name returns a short identifier for this transform (e.g. "market_shock").
	Name() string

	// Validate checks the transform against a baseline without applying it.
	Validate(base *domain.ClientScenario) error

	// Apply produces the stressed scenario.
	Apply(base *domain.ClientScenario) (*domain.ClientScenario, error)
}

// ForScenario builds the transform variant for a catalog entry, decoding its
// parameter bag into the variant's typed record.
func ForScenario(sc domain.StressScenario) (StressTransform, error) {
	switch sc.Type {
	case domain.TypeMarketCrash, domain.TypeRecession, domain.TypeSector,
		domain.TypeGeopolitical, domain.TypeCurrencyCrisis:
		return newMarketShock(sc), nil
	case domain.TypeInflationShock:
		return newInflationShock(sc), nil
	case domain.TypeInterestRateShock:
		return newRateShock(sc), nil
	case domain.TypeLongevity:
		return newLongevityExtension(sc), nil
	case domain.TypeCommodity:
		return newCommodityShock(sc), nil
	case domain.TypePersonalCrisis:
		return forPersonalCrisis(sc)
	default:
		return nil, fmt.Errorf("%w: %q (scenario %s)", ErrUnsupportedType, sc.Type, sc.ID)
	}
}

// Apply builds and runs the transform for one catalog entry against a
// baseline.
func Apply(base *domain.ClientScenario, sc domain.StressScenario) (*domain.ClientScenario, error) {
	t, err := ForScenario(sc)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(base); err != nil {
		return nil, err
	}
	return t.Apply(base)
}

// TransformError describes a failure inside one transform.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

var oneHundred = decimal.NewFromInt(100)

// asFraction converts a percent figure (25 -> 0.25).
func asFraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(oneHundred)
}

func validateBase(name string, base *domain.ClientScenario) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	if base.ProjectionYears <= 0 {
		return NewTransformError(name, "validate",
			fmt.Sprintf("projection years must be positive, got %d", base.ProjectionYears), nil)
	}
	return nil
}
