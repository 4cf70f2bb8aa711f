// Package config loads and validates baseline client scenarios from YAML
// documents supplied by callers.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// InputParser handles parsing of baseline scenario files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadBaseline loads a baseline scenario from a YAML file and validates it.
func (ip *InputParser) LoadBaseline(filename string) (*domain.ClientScenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseBaseline(data)
}

// ParseBaseline parses and validates a baseline scenario from YAML bytes.
func (ip *InputParser) ParseBaseline(data []byte) (*domain.ClientScenario, error) {
	var scenario domain.ClientScenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBaseline(&scenario); err != nil {
		return nil, fmt.Errorf("baseline validation failed: %w", err)
	}
	return &scenario, nil
}

// ValidateBaseline checks the field constraints the stress pipeline depends
// on. Allocation weights may sum to anything positive (the normalizer
// rescales them) but must not be negative.
func (ip *InputParser) ValidateBaseline(cs *domain.ClientScenario) error {
	if cs.ProjectionYears <= 0 {
		return fmt.Errorf("projection_years must be positive, got %d", cs.ProjectionYears)
	}
	if cs.LifeExpectancy > 0 && cs.RetirementAge > 0 && cs.LifeExpectancy < cs.RetirementAge {
		return fmt.Errorf("life_expectancy (%d) cannot be below retirement_age (%d)",
			cs.LifeExpectancy, cs.RetirementAge)
	}
	if cs.RiskScore < 0 || cs.RiskScore > 10 {
		return fmt.Errorf("risk_score must be between 0 and 10, got %d", cs.RiskScore)
	}

	monetary := map[string]decimal.Decimal{
		"current_income":    cs.CurrentIncome,
		"current_expenses":  cs.CurrentExpenses,
		"current_savings":   cs.CurrentSavings,
		"pension_value":     cs.PensionValue,
		"pension_pot_value": cs.PensionPotValue,
		"investment_value":  cs.InvestmentValue,
	}
	for field, value := range monetary {
		if value.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", field, value)
		}
	}

	weights := map[string]decimal.Decimal{
		"equity_allocation":      cs.EquityAllocation,
		"bond_allocation":        cs.BondAllocation,
		"cash_allocation":        cs.CashAllocation,
		"alternative_allocation": cs.AlternativeAllocation,
	}
	for field, value := range weights {
		if value.IsNegative() {
			return fmt.Errorf("%s cannot be negative, got %s", field, value)
		}
	}

	return nil
}
