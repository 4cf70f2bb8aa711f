package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// CSVFormatter emits one row per scenario result, in result order.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(results []domain.StressTestResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"ScenarioID", "Scenario", "Category", "Severity",
		"SurvivalProbability", "ShortfallRisk", "WorstCaseOutcome",
		"ResilienceScore", "RecoveryTimeYears", "MitigationPriority",
		"PortfolioDeclinePct", "IncomeReductionPct", "ExpenseIncreasePct",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, res := range results {
		recovery := ""
		if res.RecoveryTimeYears != nil {
			recovery = strconv.Itoa(*res.RecoveryTimeYears)
		}
		row := []string{
			res.ScenarioID,
			res.ScenarioName,
			res.Category,
			string(res.Severity),
			res.SurvivalProbability.StringFixed(1),
			res.ShortfallRisk.StringFixed(1),
			res.WorstCaseOutcome.StringFixed(2),
			res.ResilienceScore.StringFixed(1),
			recovery,
			string(res.MitigationPriority),
			res.Impact.PortfolioDeclinePercent.StringFixed(2),
			res.Impact.IncomeReductionPercent.StringFixed(2),
			res.Impact.ExpenseIncreasePercent.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
