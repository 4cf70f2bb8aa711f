package stress

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

func createTestBaseline() *domain.ClientScenario {
	return &domain.ClientScenario{
		ID:                     "baseline-1",
		ClientName:             "Test Client",
		CurrentIncome:          decimal.NewFromInt(60000),
		CurrentExpenses:        decimal.NewFromInt(36000),
		RetirementIncomeTarget: decimal.NewFromInt(40000),
		CurrentSavings:         decimal.NewFromInt(50000),
		PensionValue:           decimal.NewFromInt(200000),
		InvestmentValue:        decimal.NewFromInt(150000),
		StatePensionAmount:     decimal.NewFromInt(11000),
		EquityAllocation:       decimal.NewFromInt(80),
		BondAllocation:         decimal.NewFromInt(20),
		EquityReturn:           decimal.NewFromFloat(4.5),
		BondReturn:             decimal.NewFromFloat(1.5),
		CashReturn:             decimal.NewFromFloat(0.5),
		AlternativeReturn:      decimal.NewFromFloat(3.0),
		InflationRate:          decimal.NewFromFloat(2.5),
		ProjectionYears:        30,
		RetirementAge:          67,
		LifeExpectancy:         90,
		RiskScore:              5,
	}
}

func marketCrashScenario() domain.StressScenario {
	return domain.StressScenario{
		ID:            "market_crash_severe",
		Name:          "Severe Market Crash",
		Type:          domain.TypeMarketCrash,
		Category:      domain.CategoryMarketRisk,
		Severity:      domain.SeveritySevere,
		DurationYears: 2,
		Parameters: map[string]decimal.Decimal{
			"equity_decline": decimal.NewFromInt(-40),
			"bond_decline":   decimal.NewFromInt(-15),
		},
	}
}

// With allocation 80/20/0/0 and declines -40/-15 the weighted shock is
// 0.8*(-40) + 0.2*(-15) = -35, so asset values multiply by 0.65.
func TestMarketShock_WeightedShock(t *testing.T) {
	baseline := createTestBaseline()

	stressed, err := Apply(baseline, marketCrashScenario())
	require.NoError(t, err)

	assert.True(t, stressed.InvestmentValue.Equal(decimal.NewFromInt(97500)),
		"investment: got %s", stressed.InvestmentValue)
	assert.True(t, stressed.PensionValue.Equal(decimal.NewFromInt(130000)),
		"pension: got %s", stressed.PensionValue)
	// No cash decline parameter, so savings are untouched.
	assert.True(t, stressed.CurrentSavings.Equal(baseline.CurrentSavings))
}

func TestMarketShock_CashDeclineHitsSavings(t *testing.T) {
	baseline := createTestBaseline()
	baseline.EquityAllocation = decimal.NewFromInt(50)
	baseline.BondAllocation = decimal.NewFromInt(0)
	baseline.CashAllocation = decimal.NewFromInt(50)

	sc := marketCrashScenario()
	sc.Parameters["cash_decline"] = decimal.NewFromInt(-10)

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	// Cash weight 0.5 * -10% = -5% on savings.
	assert.True(t, stressed.CurrentSavings.Equal(decimal.NewFromInt(47500)),
		"savings: got %s", stressed.CurrentSavings)
}

func TestApply_NeverMutatesBaseline(t *testing.T) {
	baseline := createTestBaseline()
	original := *baseline

	first, err := Apply(baseline, marketCrashScenario())
	require.NoError(t, err)
	second, err := Apply(baseline, marketCrashScenario())
	require.NoError(t, err)

	assert.Equal(t, original, *baseline, "baseline must not change")
	assert.Equal(t, *first, *second, "equal inputs must yield equal stressed scenarios")
	assert.NotSame(t, first, second)
}

func TestInflationShock(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:       "persistent_inflation",
		Type:     domain.TypeInflationShock,
		Severity: domain.SeverityModerate,
		Parameters: map[string]decimal.Decimal{
			"inflation_increase":  decimal.NewFromInt(4),
			"real_return_erosion": decimal.NewFromFloat(1.5),
			"expense_multiplier":  decimal.NewFromFloat(1.1),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	assert.True(t, stressed.InflationRate.Equal(decimal.NewFromFloat(6.5)))
	assert.True(t, stressed.EquityReturn.Equal(decimal.NewFromInt(3)))
	assert.True(t, stressed.BondReturn.Equal(decimal.NewFromInt(0)))
	assert.True(t, stressed.CurrentExpenses.Equal(decimal.NewFromInt(39600)))
	// Cash return untouched by an inflation shock.
	assert.True(t, stressed.CashReturn.Equal(baseline.CashReturn))
}

func TestInflationShock_MissingMultiplierDefaultsToOne(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "inflation_bare",
		Type: domain.TypeInflationShock,
		Parameters: map[string]decimal.Decimal{
			"inflation_increase": decimal.NewFromInt(2),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	assert.True(t, stressed.CurrentExpenses.Equal(baseline.CurrentExpenses))
	assert.True(t, stressed.EquityReturn.Equal(baseline.EquityReturn))
}

func TestRateShock_Increase(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "rate_hike_cycle",
		Type: domain.TypeInterestRateShock,
		Parameters: map[string]decimal.Decimal{
			"rate_increase": decimal.NewFromInt(2),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	assert.True(t, stressed.BondReturn.Equal(decimal.NewFromFloat(3.5)))
	assert.True(t, stressed.CashReturn.Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, stressed.EquityReturn.Equal(baseline.EquityReturn))
}

func TestRateShock_FloorClampsCashReturn(t *testing.T) {
	baseline := createTestBaseline()
	baseline.CashReturn = decimal.NewFromFloat(0.1)
	sc := domain.StressScenario{
		ID:   "low_rate_decade",
		Type: domain.TypeInterestRateShock,
		Parameters: map[string]decimal.Decimal{
			"rate_floor": decimal.NewFromFloat(0.5),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)
	assert.True(t, stressed.CashReturn.Equal(decimal.NewFromFloat(0.5)))

	// A cash return already above the floor is left alone.
	baseline.CashReturn = decimal.NewFromInt(1)
	stressed, err = Apply(baseline, sc)
	require.NoError(t, err)
	assert.True(t, stressed.CashReturn.Equal(decimal.NewFromInt(1)))
}

func TestLongevityExtension(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "longevity_extension",
		Type: domain.TypeLongevity,
		Parameters: map[string]decimal.Decimal{
			"additional_years": decimal.NewFromInt(5),
			"annual_care_cost": decimal.NewFromInt(15000),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	assert.Equal(t, 35, stressed.ProjectionYears)
	assert.Equal(t, 95, stressed.LifeExpectancy)
	assert.True(t, stressed.CurrentExpenses.Equal(decimal.NewFromInt(51000)))
}

func TestCommodityShock(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "commodity_price_spike",
		Type: domain.TypeCommodity,
		Parameters: map[string]decimal.Decimal{
			"price_spike":             decimal.NewFromInt(3),
			"transport_cost_increase": decimal.NewFromFloat(0.15),
		},
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	assert.True(t, stressed.InflationRate.Equal(decimal.NewFromFloat(5.5)))
	assert.True(t, stressed.CurrentExpenses.Equal(decimal.NewFromInt(41400)))
}

func TestApply_UnsupportedTypeIsExplicitError(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "typo_scenario",
		Type: domain.ScenarioType("market_crsh"),
	}

	_, err := Apply(baseline, sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestApply_MissingParametersAreZeroEffect(t *testing.T) {
	baseline := createTestBaseline()
	sc := domain.StressScenario{
		ID:   "empty_crash",
		Type: domain.TypeMarketCrash,
	}

	stressed, err := Apply(baseline, sc)
	require.NoError(t, err)

	// No decline parameters at all: nothing moves.
	assert.True(t, stressed.InvestmentValue.Equal(baseline.InvestmentValue))
	assert.True(t, stressed.PensionValue.Equal(baseline.PensionValue))
	assert.True(t, stressed.CurrentSavings.Equal(baseline.CurrentSavings))
}

func TestApply_NilBaseline(t *testing.T) {
	_, err := Apply(nil, marketCrashScenario())
	require.Error(t, err)

	var terr *TransformError
	assert.ErrorAs(t, err, &terr)
}
