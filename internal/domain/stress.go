package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioType identifies which stress transform applies to a catalog entry.
type ScenarioType string

const (
	TypeMarketCrash       ScenarioType = "market_crash"
	TypeInflationShock    ScenarioType = "inflation_shock"
	TypeInterestRateShock ScenarioType = "interest_rate_shock"
	TypeLongevity         ScenarioType = "longevity"
	TypePersonalCrisis    ScenarioType = "personal_crisis"
	TypeRecession         ScenarioType = "recession"
	TypeGeopolitical      ScenarioType = "geopolitical"
	TypeCurrencyCrisis    ScenarioType = "currency_crisis"
	TypeCommodity         ScenarioType = "commodity"
	TypeSector            ScenarioType = "sector"
)

// Severity is the catalog's tiering of how hard a scenario hits.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Display categories used for grouping and for the category-sensitive
// resilience scoring.
const (
	CategoryMarketRisk       = "Market Risk"
	CategoryEconomicRisk     = "Economic Risk"
	CategoryPersonalRisk     = "Personal Risk"
	CategoryLongevityRisk    = "Longevity Risk"
	CategoryGeopoliticalRisk = "Geopolitical Risk"
)

// MitigationPriority is the advisor triage tier attached to each result.
type MitigationPriority string

const (
	PriorityImmediate MitigationPriority = "immediate"
	PriorityShortTerm MitigationPriority = "short_term"
	PriorityLongTerm  MitigationPriority = "long_term"
)

// StressScenario is one immutable catalog entry. Parameters is the
// serialized form of the type-specific deltas; transforms decode it into
// typed parameter records at dispatch time, so a missing key is always a
// zero-effect default rather than an error.
type StressScenario struct {
	ID            string                     `yaml:"id" json:"id"`
	Name          string                     `yaml:"name" json:"name"`
	Description   string                     `yaml:"description" json:"description"`
	Type          ScenarioType               `yaml:"type" json:"type"`
	Category      string                     `yaml:"category" json:"category"`
	Severity      Severity                   `yaml:"severity" json:"severity"`
	DurationYears int                        `yaml:"duration_years" json:"durationYears"`
	Parameters    map[string]decimal.Decimal `yaml:"parameters" json:"parameters"`
}

// Param returns the named parameter and whether it was present.
func (ss *StressScenario) Param(key string) (decimal.Decimal, bool) {
	v, ok := ss.Parameters[key]
	return v, ok
}

// ParamOr returns the named parameter, or def when absent.
func (ss *StressScenario) ParamOr(key string, def decimal.Decimal) decimal.Decimal {
	if v, ok := ss.Parameters[key]; ok {
		return v
	}
	return def
}
