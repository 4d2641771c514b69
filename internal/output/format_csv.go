package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/tazlab/tazgo/internal/domain"
)

// CSVFormatter renders the two compensation branches as CSV rows.
type CSVFormatter struct{}

// Name implements Formatter.
func (cf *CSVFormatter) Name() string { return "csv" }

// Format generates CSV output.
func (cf *CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Compensation",
		"Eligible Days",
		"Gross Amount",
		"Income Tax",
		"Stamp Tax",
		"Net Amount",
	}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	if err := writer.Write(cf.formatRow("severance", result.Severance)); err != nil {
		return nil, err
	}
	if err := writer.Write(cf.formatRow("notice", result.Notice)); err != nil {
		return nil, err
	}
	if err := writer.Write([]string{
		"total",
		"",
		result.TotalGross.StringFixed(2),
		result.Notice.IncomeTax.StringFixed(2),
		result.Severance.StampTax.Add(result.Notice.StampTax).StringFixed(2),
		result.TotalNet.StringFixed(2),
	}); err != nil {
		return nil, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return []byte(sb.String()), nil
}

func (cf *CSVFormatter) formatRow(name string, b domain.CompensationBreakdown) []string {
	return []string{
		name,
		strconv.Itoa(b.EligibleDays),
		b.GrossAmount.StringFixed(2),
		b.IncomeTax.StringFixed(2),
		b.StampTax.StringFixed(2),
		b.NetAmount.StringFixed(2),
	}
}
