package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
)

// TableFormatter renders a console report of the compensation breakdown.
type TableFormatter struct{}

// Name implements Formatter.
func (tf *TableFormatter) Name() string { return "table" }

// Format generates the report.
func (tf *TableFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("SEVERANCE & NOTICE COMPENSATION\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Employment period: %s - %s\n",
		result.WorkStartDate.Format("2006-01-02"), result.WorkEndDate.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Service time:      %d days (%d years, %d months, %d days)\n",
		result.TotalWorkDays, result.WorkPeriod.Years, result.WorkPeriod.Months, result.WorkPeriod.Days))
	sb.WriteString(fmt.Sprintf("Monthly gross:     %s TL\n", money(result.MonthlyGrossSalary)))
	sb.WriteString(fmt.Sprintf("Applied ceiling:   %s TL\n", money(result.AppliedCeiling)))
	sb.WriteString(fmt.Sprintf("Daily gross wage:  %s TL\n", money(result.DailyGrossWage)))
	sb.WriteString("\n")

	nameWidth := 14
	numWidth := 14
	lineWidth := nameWidth + 5*(numWidth+1)

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Compensation",
		numWidth, "Eligible Days",
		numWidth, "Gross",
		numWidth, "Income Tax",
		numWidth, "Stamp Tax",
		numWidth, "Net"))
	sb.WriteString(strings.Repeat("-", lineWidth) + "\n")
	sb.WriteString(tf.formatRow("Severance", result.Severance, nameWidth, numWidth))
	sb.WriteString(tf.formatRow("Notice", result.Notice, nameWidth, numWidth))
	sb.WriteString(strings.Repeat("-", lineWidth) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "TOTAL",
		numWidth, "",
		numWidth, money(result.TotalGross),
		numWidth, money(result.Notice.IncomeTax),
		numWidth, money(result.Severance.StampTax.Add(result.Notice.StampTax)),
		numWidth, money(result.TotalNet)))
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	if result.Severance.EligibleDays == 0 {
		sb.WriteString("\nNote: tenure below the statutory minimum, no severance accrued.\n")
	}

	return []byte(sb.String()), nil
}

func (tf *TableFormatter) formatRow(name string, b domain.CompensationBreakdown, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*d %*s %*s %*s %*s\n",
		nameWidth, name,
		numWidth, b.EligibleDays,
		numWidth, money(b.GrossAmount),
		numWidth, money(b.IncomeTax),
		numWidth, money(b.StampTax),
		numWidth, money(b.NetAmount))
}

// money renders an amount with two fraction digits.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
