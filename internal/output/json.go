package output

import (
	json "github.com/goccy/go-json"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// JSONFormatter emits the result list as indented JSON. The document shape
// matches the HTTP API response so report collaborators can consume either.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(results []domain.StressTestResult) ([]byte, error) {
	doc := struct {
		Results []domain.StressTestResult `json:"results"`
		Count   int                       `json:"count"`
	}{
		Results: results,
		Count:   len(results),
	}
	return json.MarshalIndent(doc, "", "  ")
}
