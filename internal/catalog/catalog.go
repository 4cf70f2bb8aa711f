// Package catalog holds the static registry of named stress scenarios the
// engine can run against a baseline.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Catalog is a read-only registry of stress scenarios. Entries are created
// once at construction and never mutated afterwards.
type Catalog struct {
	scenarios []domain.StressScenario
	index     map[string]int
}

// New builds a catalog from the given scenarios, preserving order.
func New(scenarios []domain.StressScenario) *Catalog {
	c := &Catalog{
		scenarios: scenarios,
		index:     make(map[string]int, len(scenarios)),
	}
	for i, s := range scenarios {
		c.index[s.ID] = i
	}
	return c
}

// List returns all scenarios in catalog order.
func (c *Catalog) List() []domain.StressScenario {
	out := make([]domain.StressScenario, len(c.scenarios))
	copy(out, c.scenarios)
	return out
}

// Get retrieves a scenario by id. An unknown id yields ok=false, not an
// error.
func (c *Catalog) Get(id string) (domain.StressScenario, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.StressScenario{}, false
	}
	return c.scenarios[i], true
}

// ByCategory groups the catalog by display category, preserving catalog
// order within each group.
func (c *Catalog) ByCategory() map[string][]domain.StressScenario {
	grouped := make(map[string][]domain.StressScenario)
	for _, s := range c.scenarios {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}

// PersonalCrisis returns the personal-risk subset of the catalog.
func (c *Catalog) PersonalCrisis() []domain.StressScenario {
	var out []domain.StressScenario
	for _, s := range c.scenarios {
		if s.Category == domain.CategoryPersonalRisk {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.scenarios) }

func params(kv map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(kv))
	for k, v := range kv {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

// Default builds the built-in catalog of adverse economic and personal-life
// scenarios.
func Default() *Catalog {
	return New([]domain.StressScenario{
		{
			ID:            "market_crash_severe",
			Name:          "Severe Market Crash",
			Description:   "2008-style equity collapse with correlated bond losses",
			Type:          domain.TypeMarketCrash,
			Category:      domain.CategoryMarketRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"equity_decline": -40,
				"bond_decline":   -15,
			}),
		},
		{
			ID:            "market_correction",
			Name:          "Market Correction",
			Description:   "Sharp but orderly repricing of equities",
			Type:          domain.TypeMarketCrash,
			Category:      domain.CategoryMarketRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 1,
			Parameters: params(map[string]float64{
				"equity_decline": -20,
				"bond_decline":   -5,
			}),
		},
		{
			ID:            "prolonged_recession",
			Name:          "Prolonged Recession",
			Description:   "Multi-year contraction with depressed asset prices",
			Type:          domain.TypeRecession,
			Category:      domain.CategoryMarketRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 3,
			Parameters: params(map[string]float64{
				"equity_decline": -30,
				"bond_decline":   -10,
			}),
		},
		{
			ID:            "tech_sector_crash",
			Name:          "Sector Concentration Crash",
			Description:   "Collapse concentrated in a single overweighted sector",
			Type:          domain.TypeSector,
			Category:      domain.CategoryMarketRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"equity_decline": -25,
			}),
		},
		{
			ID:            "persistent_inflation",
			Name:          "Persistent High Inflation",
			Description:   "Inflation stays well above target for several years",
			Type:          domain.TypeInflationShock,
			Category:      domain.CategoryEconomicRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 4,
			Parameters: params(map[string]float64{
				"inflation_increase":  4,
				"real_return_erosion": 1.5,
				"expense_multiplier":  1.1,
			}),
		},
		{
			ID:            "rate_hike_cycle",
			Name:          "Aggressive Rate Hikes",
			Description:   "Central bank raises rates sharply to contain inflation",
			Type:          domain.TypeInterestRateShock,
			Category:      domain.CategoryEconomicRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"rate_increase": 2,
			}),
		},
		{
			ID:            "low_rate_decade",
			Name:          "Lower-For-Longer Rates",
			Description:   "Cash returns pinned near a floor for an extended period",
			Type:          domain.TypeInterestRateShock,
			Category:      domain.CategoryEconomicRisk,
			Severity:      domain.SeverityMild,
			DurationYears: 5,
			Parameters: params(map[string]float64{
				"rate_floor": 0.5,
			}),
		},
		{
			ID:            "commodity_price_spike",
			Name:          "Commodity Price Spike",
			Description:   "Energy and food costs surge, feeding headline inflation",
			Type:          domain.TypeCommodity,
			Category:      domain.CategoryEconomicRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"price_spike":             3,
				"transport_cost_increase": 0.15,
			}),
		},
		{
			ID:            "currency_crisis",
			Name:          "Currency Crisis",
			Description:   "Sharp devaluation hits domestic asset values",
			Type:          domain.TypeCurrencyCrisis,
			Category:      domain.CategoryEconomicRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"equity_decline": -15,
				"bond_decline":   -10,
			}),
		},
		{
			ID:            "geopolitical_conflict",
			Name:          "Geopolitical Conflict",
			Description:   "Regional conflict triggers a broad risk-off repricing",
			Type:          domain.TypeGeopolitical,
			Category:      domain.CategoryGeopoliticalRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 1,
			Parameters: params(map[string]float64{
				"equity_decline": -18,
				"bond_decline":   -5,
			}),
		},
		{
			ID:            "longevity_extension",
			Name:          "Living Longer Than Planned",
			Description:   "Life expectancy exceeds the plan by several years with late-life care costs",
			Type:          domain.TypeLongevity,
			Category:      domain.CategoryLongevityRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 5,
			Parameters: params(map[string]float64{
				"additional_years": 5,
				"annual_care_cost": 15000,
			}),
		},
		{
			ID:            "job_loss_redundancy",
			Name:          "Job Loss / Redundancy",
			Description:   "Redundancy with a severance payment and a spell on unemployment benefit",
			Type:          domain.TypePersonalCrisis,
			Category:      domain.CategoryPersonalRisk,
			Severity:      domain.SeverityModerate,
			DurationYears: 1,
			Parameters: params(map[string]float64{
				"severance_months":             3,
				"unemployment_benefit_percent": 30,
				"healthcare_cost_multiplier":   1.05,
			}),
		},
		{
			ID:            "major_health_event",
			Name:          "Major Health Event",
			Description:   "Serious illness reduces earnings and adds ongoing care costs",
			Type:          domain.TypePersonalCrisis,
			Category:      domain.CategoryPersonalRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 2,
			Parameters: params(map[string]float64{
				"income_reduction_percent": 40,
				"emergency_expense":        25000,
				"annual_care_cost":         12000,
			}),
		},
		{
			ID:            "divorce_separation",
			Name:          "Divorce / Separation",
			Description:   "Asset settlement, legal costs and single-household living expenses",
			Type:          domain.TypePersonalCrisis,
			Category:      domain.CategoryPersonalRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 3,
			Parameters: params(map[string]float64{
				"settlement_percent":      50,
				"legal_costs":             30000,
				"expense_increase_percent": 25,
			}),
		},
		{
			ID:            "forced_early_retirement",
			Name:          "Forced Early Retirement",
			Description:   "Health or redundancy forces retirement years ahead of plan",
			Type:          domain.TypePersonalCrisis,
			Category:      domain.CategoryPersonalRisk,
			Severity:      domain.SeveritySevere,
			DurationYears: 5,
			Parameters: params(map[string]float64{
				"pension_penalty_percent": 25,
				"bridge_healthcare_cost":  8000,
				"sequence_risk_discount":  1.5,
			}),
		},
	})
}
