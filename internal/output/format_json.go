package output

import (
	json "github.com/goccy/go-json"

	"github.com/tazlab/tazgo/internal/domain"
)

// JSONFormatter renders the result as JSON.
type JSONFormatter struct {
	Pretty bool // if true, format with indentation
}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format generates JSON output.
func (jf *JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
