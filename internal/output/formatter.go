package output

import (
	"strings"

	"github.com/tazlab/tazgo/internal/domain"
)

// Formatter renders a calculation result in one output format.
type Formatter interface {
	Format(result *domain.CalculationResult) ([]byte, error)
	Name() string
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table", "console", "":
		return &TableFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "json-compact":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the registered formatter names for help text.
func FormatterNames() []string {
	return []string{"table", "json", "json-compact", "csv"}
}
