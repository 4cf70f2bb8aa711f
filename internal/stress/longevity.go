package stress

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// LongevityExtension stretches the projection horizon and life expectancy
// and layers late-life care costs onto expenses. Parameters are additive:
// existing expenses are kept and the care cost is added on top.
type LongevityExtension struct {
	ScenarioID      string
	AdditionalYears int
	AnnualCareCost  decimal.Decimal
}

func newLongevityExtension(sc domain.StressScenario) *LongevityExtension {
	return &LongevityExtension{
		ScenarioID:      sc.ID,
		AdditionalYears: int(sc.ParamOr("additional_years", decimal.Zero).IntPart()),
		AnnualCareCost:  sc.ParamOr("annual_care_cost", decimal.Zero),
	}
}

func (le *LongevityExtension) Name() string { return "longevity_extension" }

func (le *LongevityExtension) Validate(base *domain.ClientScenario) error {
	if err := validateBase(le.Name(), base); err != nil {
		return err
	}
	if le.AdditionalYears < 0 {
		return NewTransformError(le.Name(), "validate", "additional years cannot be negative", nil)
	}
	return nil
}

func (le *LongevityExtension) Apply(base *domain.ClientScenario) (*domain.ClientScenario, error) {
	stressed := base.DeepCopy()
	stressed.ProjectionYears = base.ProjectionYears + le.AdditionalYears
	stressed.LifeExpectancy = base.LifeExpectancy + le.AdditionalYears
	stressed.CurrentExpenses = base.CurrentExpenses.Add(le.AnnualCareCost)
	return stressed, nil
}
