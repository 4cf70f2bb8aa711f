package simulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

func createTestScenario() *domain.ClientScenario {
	return &domain.ClientScenario{
		ID:                     "sim-input",
		CurrentIncome:          decimal.NewFromInt(55000),
		CurrentExpenses:        decimal.NewFromInt(30000),
		RetirementIncomeTarget: decimal.NewFromInt(42000),
		CurrentSavings:         decimal.NewFromInt(40000),
		PensionValue:           decimal.NewFromInt(180000),
		InvestmentValue:        decimal.NewFromInt(120000),
		StatePensionAmount:     decimal.NewFromInt(11000),
		OtherGuaranteedIncome:  decimal.NewFromInt(4000),
		EquityAllocation:       decimal.NewFromInt(60),
		BondAllocation:         decimal.NewFromInt(30),
		CashAllocation:         decimal.NewFromInt(10),
		EquityReturn:           decimal.NewFromFloat(4.5),
		BondReturn:             decimal.NewFromFloat(1.5),
		CashReturn:             decimal.NewFromFloat(0.5),
		AlternativeReturn:      decimal.NewFromInt(3),
		InflationRate:          decimal.NewFromFloat(2.5),
		ProjectionYears:        25,
		RiskScore:              6,
	}
}

func TestBuildInput_InitialWealthSumsAssets(t *testing.T) {
	cs := createTestScenario()

	input := BuildInput(cs, 500)

	// 40000 savings + 120000 investments + 180000 pension.
	assert.True(t, input.InitialWealth.Equal(decimal.NewFromInt(340000)),
		"initial wealth: got %s", input.InitialWealth)
	assert.Equal(t, 25, input.HorizonYears)
	assert.Equal(t, 500, input.TrialCount)
	assert.Equal(t, 6, input.RiskScore)
}

func TestBuildInput_UsesPopulatedPensionField(t *testing.T) {
	cs := createTestScenario()
	cs.PensionValue = decimal.Zero
	cs.PensionPotValue = decimal.NewFromInt(250000)

	input := BuildInput(cs, 100)

	assert.True(t, input.InitialWealth.Equal(decimal.NewFromInt(410000)))
}

func TestBuildInput_WithdrawalIsTargetMinusGuaranteed(t *testing.T) {
	cs := createTestScenario()

	input := BuildInput(cs, 100)

	// 42000 target - (11000 state pension + 4000 other).
	assert.True(t, input.AnnualWithdrawal.Equal(decimal.NewFromInt(27000)),
		"withdrawal: got %s", input.AnnualWithdrawal)
}

func TestBuildInput_WithdrawalFallsBackToExpenses(t *testing.T) {
	cs := createTestScenario()
	cs.RetirementIncomeTarget = decimal.Zero

	input := BuildInput(cs, 100)

	// 30000 expenses - 15000 guaranteed.
	assert.True(t, input.AnnualWithdrawal.Equal(decimal.NewFromInt(15000)))
}

func TestBuildInput_WithdrawalFlooredAtZero(t *testing.T) {
	cs := createTestScenario()
	cs.RetirementIncomeTarget = decimal.NewFromInt(10000)

	input := BuildInput(cs, 100)

	assert.True(t, input.AnnualWithdrawal.IsZero())
}

func TestBuildInput_NominalReturnsAddInflation(t *testing.T) {
	cs := createTestScenario()

	input := BuildInput(cs, 100)

	assert.True(t, input.Returns.Equity.Equal(decimal.NewFromInt(7)))
	assert.True(t, input.Returns.Bonds.Equal(decimal.NewFromInt(4)))
	assert.True(t, input.Returns.Cash.Equal(decimal.NewFromInt(3)))
	assert.True(t, input.Returns.Alternatives.Equal(decimal.NewFromFloat(5.5)))
}

func TestBuildInput_AllocationNormalized(t *testing.T) {
	cs := createTestScenario()

	input := BuildInput(cs, 100)

	assert.InDelta(t, 0.6, input.Allocation.Equity, 1e-9)
	assert.InDelta(t, 0.3, input.Allocation.Bonds, 1e-9)
	assert.InDelta(t, 0.1, input.Allocation.Cash, 1e-9)
	assert.InDelta(t, 1.0, input.Allocation.Sum(), 1e-9)
}
