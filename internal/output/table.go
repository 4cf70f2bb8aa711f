package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	priorityStyles = map[domain.MitigationPriority]lipgloss.Style{
		domain.PriorityImmediate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		domain.PriorityShortTerm: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		domain.PriorityLongTerm:  lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	}
)

// TableFormatter renders a styled terminal table, one row per scenario,
// with mitigation priorities color coded for quick triage.
type TableFormatter struct{}

func (TableFormatter) Name() string { return "table" }

func (TableFormatter) Format(results []domain.StressTestResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, headerStyle.Render("STRESS TEST RESULTS"))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, headerStyle.Render(fmt.Sprintf(
		"%-28s %-18s %-9s %9s %9s %11s %9s %-10s",
		"Scenario", "Category", "Severity", "Survival", "Resil.", "Worst Case", "Recovery", "Priority")))

	for _, res := range results {
		recovery := dimStyle.Render("permanent")
		if res.RecoveryTimeYears != nil {
			recovery = strconv.Itoa(*res.RecoveryTimeYears) + "y"
		}

		priority := string(res.MitigationPriority)
		if style, ok := priorityStyles[res.MitigationPriority]; ok {
			priority = style.Render(priority)
		}

		fmt.Fprintf(buf, "%-28s %-18s %-9s %8s%% %9s %11s %9s %s\n",
			truncate(res.ScenarioName, 28),
			truncate(res.Category, 18),
			res.Severity,
			res.SurvivalProbability.StringFixed(1),
			res.ResilienceScore.StringFixed(1),
			res.WorstCaseOutcome.StringFixed(0),
			recovery,
			priority)
	}

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, dimStyle.Render(fmt.Sprintf("%d scenario(s) evaluated", len(results))))

	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
