package tui

import (
	"fmt"
	"strings"

	"github.com/tazlab/tazgo/internal/domain"
)

var fieldLabels = [fieldCount]string{
	"Work start date",
	"Work end date",
	"Monthly gross salary",
	"Cumulative tax base",
	"Calculation basis days",
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Severance & Notice Compensation Calculator"))
	sb.WriteString("\n")

	for i, input := range m.inputs {
		label := labelStyle
		if i == m.focus {
			label = focusedLabelStyle
		}
		sb.WriteString(label.Render(fieldLabels[i]))
		sb.WriteString(" ")
		sb.WriteString(input.View())
		sb.WriteString("\n")
	}

	if m.err != nil {
		sb.WriteString(errorStyle.Render("error: " + m.err.Error()))
		sb.WriteString("\n")
	}
	if m.result != nil {
		sb.WriteString(resultBoxStyle.Render(renderResult(m.result)))
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("tab/shift+tab move - enter calculate - esc quit"))
	sb.WriteString("\n")

	return sb.String()
}

func renderResult(r *domain.CalculationResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Service time    %d days (%dy %dm %dd)\n",
		r.TotalWorkDays, r.WorkPeriod.Years, r.WorkPeriod.Months, r.WorkPeriod.Days)
	fmt.Fprintf(&sb, "Daily wage      %s TL (ceiling %s)\n\n",
		r.DailyGrossWage.StringFixed(2), r.AppliedCeiling.StringFixed(2))

	fmt.Fprintf(&sb, "Severance       %3d days  gross %14s  net %14s\n",
		r.Severance.EligibleDays, r.Severance.GrossAmount.StringFixed(2), r.Severance.NetAmount.StringFixed(2))
	fmt.Fprintf(&sb, "Notice          %3d days  gross %14s  net %14s\n",
		r.Notice.EligibleDays, r.Notice.GrossAmount.StringFixed(2), r.Notice.NetAmount.StringFixed(2))
	fmt.Fprintf(&sb, "Taxes           income %s  stamp %s\n\n",
		r.Notice.IncomeTax.StringFixed(2),
		r.Severance.StampTax.Add(r.Notice.StampTax).StringFixed(2))

	sb.WriteString(totalStyle.Render(fmt.Sprintf("TOTAL NET       %s TL", r.TotalNet.StringFixed(2))))
	return sb.String()
}
