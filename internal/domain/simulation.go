package domain

import (
	"github.com/shopspring/decimal"
)

// AssetMix holds normalized allocation weights as fractions summing to 1.
type AssetMix struct {
	Equity       float64 `json:"equity"`
	Bonds        float64 `json:"bonds"`
	Cash         float64 `json:"cash"`
	Alternatives float64 `json:"alternatives"`
}

// Sum returns the total weight; a valid mix sums to 1 within floating
// tolerance.
func (m AssetMix) Sum() float64 {
	return m.Equity + m.Bonds + m.Cash + m.Alternatives
}

// AssetReturns holds nominal (real + inflation) return assumptions per asset
// class, percent.
type AssetReturns struct {
	Equity       decimal.Decimal `json:"equity"`
	Bonds        decimal.Decimal `json:"bonds"`
	Cash         decimal.Decimal `json:"cash"`
	Alternatives decimal.Decimal `json:"alternatives"`
}

// SimulationInput is the normalized parameter set handed to a simulation
// engine.
type SimulationInput struct {
	InitialWealth    decimal.Decimal `json:"initialWealth"`
	HorizonYears     int             `json:"horizonYears"`
	AnnualWithdrawal decimal.Decimal `json:"annualWithdrawal"`
	RiskScore        int             `json:"riskScore"`
	InflationRate    decimal.Decimal `json:"inflationRate"`
	TrialCount       int             `json:"trialCount"`
	Allocation       AssetMix        `json:"allocation"`
	Returns          AssetReturns    `json:"returns"`
}

// MonteCarloTrial is one simulated forward path's outcome. ShortfallYears
// lists every projection year (1-based) in which wealth was at or below
// zero; Success means the path ended with positive wealth.
type MonteCarloTrial struct {
	TrialID        int               `json:"trialId"`
	FinalWealth    decimal.Decimal   `json:"finalWealth"`
	YearlyWealth   []decimal.Decimal `json:"yearlyWealth"`
	ShortfallYears []int             `json:"shortfallYears,omitempty"`
	Success        bool              `json:"success"`
	MaxDrawdown    decimal.Decimal   `json:"maxDrawdown"` // percent decline from peak
}

// ConfidenceIntervals holds the distribution percentiles of final wealth.
// Values are monotonically non-decreasing from P10 through P90.
type ConfidenceIntervals struct {
	P10 decimal.Decimal `json:"p10"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
}

// MonteCarloResults is the full trial set plus the aggregates derived from
// it by the simulation adapter.
type MonteCarloResults struct {
	Trials              []MonteCarloTrial   `json:"trials"`
	SuccessProbability  decimal.Decimal     `json:"successProbability"` // percent
	AverageFinalWealth  decimal.Decimal     `json:"averageFinalWealth"`
	ConfidenceIntervals ConfidenceIntervals `json:"confidenceIntervals"`
	MaxDrawdown         decimal.Decimal     `json:"maxDrawdown"` // worst across trials, percent
}
