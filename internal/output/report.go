// Package output renders stress-test result lists for the CLI and the
// report-generation collaborators.
package output

import (
	"fmt"

	"github.com/MEMAtest/stress-engine/internal/domain"
)

// Formatter renders an ordered stress-test result list.
type Formatter interface {
	Name() string
	Format(results []domain.StressTestResult) ([]byte, error)
}

// ForFormat resolves a formatter by name: "json", "csv" or "table".
func ForFormat(format string) (Formatter, error) {
	switch format {
	case "json":
		return JSONFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	case "table":
		return TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
