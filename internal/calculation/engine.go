package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
)

// Engine runs severance/notice compensation calculations against an
// immutable regulatory table. It holds no other state: Calculate is a pure
// function of its input and the table, safe for concurrent use.
type Engine struct {
	Rules domain.RegulatoryConfig
}

// NewEngine creates an engine with the given regulatory table.
func NewEngine(rules domain.RegulatoryConfig) *Engine {
	return &Engine{Rules: rules}
}

// NewDefaultEngine creates an engine with the 2025 regulatory table.
func NewDefaultEngine() *Engine {
	return NewEngine(domain.Default2025())
}

// Calculate produces the full severance and notice compensation breakdown
// for one employment record.
//
// The pipeline is a single synchronous pass: dates -> elapsed period ->
// eligibility -> wage basis -> taxes -> totals. Severance is exempt from
// income tax and bears stamp tax only; notice compensation bears both. That
// asymmetry is a legal distinction, not an implementation shortcut.
func (e *Engine) Calculate(input domain.CalculationInput) (*domain.CalculationResult, error) {
	if err := validateInput(input); err != nil {
		return nil, fmt.Errorf("invalid calculation input: %w", err)
	}

	startDate := input.WorkStartDate()
	endDate := input.WorkEndDate()
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("invalid calculation input: work end date %s precedes start date %s",
			endDate.Format("2006-01-02"), startDate.Format("2006-01-02"))
	}

	basisDays := input.CalculationBasisDays
	if basisDays <= 0 {
		basisDays = 30
	}

	totalWorkDays := WorkDays(startDate, endDate)
	dailyWage := DailyGrossWage(input.MonthlyGrossSalary, basisDays, endDate, e.Rules)

	severanceDays := SeveranceEligibleDays(totalWorkDays, e.Rules.SeveranceRules)
	severanceGross := dailyWage.Mul(decimal.NewFromInt(int64(severanceDays)))
	severanceStamp := StampTax(severanceGross, e.Rules)

	noticeDays := NoticeEligibleDays(totalWorkDays, e.Rules.SeveranceRules.NoticeBrackets)
	noticeGross := dailyWage.Mul(decimal.NewFromInt(int64(noticeDays)))
	noticeIncome := IncomeTax(noticeGross, input.CumulativeTaxBase, e.Rules.IncomeTaxBrackets)
	noticeStamp := StampTax(noticeGross, e.Rules)

	severance := domain.CompensationBreakdown{
		EligibleDays: severanceDays,
		GrossAmount:  severanceGross,
		IncomeTax:    decimal.Zero,
		StampTax:     severanceStamp,
		NetAmount:    severanceGross.Sub(severanceStamp),
	}
	notice := domain.CompensationBreakdown{
		EligibleDays: noticeDays,
		GrossAmount:  noticeGross,
		IncomeTax:    noticeIncome,
		StampTax:     noticeStamp,
		NetAmount:    noticeGross.Sub(noticeIncome).Sub(noticeStamp),
	}

	return &domain.CalculationResult{
		WorkStartDate:      startDate,
		WorkEndDate:        endDate,
		TotalWorkDays:      totalWorkDays,
		WorkPeriod:         WorkPeriod(totalWorkDays),
		MonthlyGrossSalary: input.MonthlyGrossSalary,
		CumulativeTaxBase:  input.CumulativeTaxBase,
		AppliedCeiling:     SeveranceCeiling(endDate, e.Rules),
		DailyGrossWage:     dailyWage,
		Severance:          severance,
		Notice:             notice,
		TotalGross:         severance.GrossAmount.Add(notice.GrossAmount),
		TotalTax:           severance.TotalTax().Add(notice.TotalTax()),
		TotalNet:           severance.NetAmount.Add(notice.NetAmount),
	}, nil
}

// validateInput rejects calendar fields that time.Date would silently
// normalize (month 13 rolling into the next year, day 32 into the next
// month) and negative money amounts.
func validateInput(input domain.CalculationInput) error {
	for _, d := range []struct {
		name             string
		year, month, day int
	}{
		{"work start", input.WorkStartYear, input.WorkStartMonth, input.WorkStartDay},
		{"work end", input.WorkEndYear, input.WorkEndMonth, input.WorkEndDay},
	} {
		if d.year < 1900 || d.year > 2200 {
			return fmt.Errorf("%s year %d out of range", d.name, d.year)
		}
		if d.month < 1 || d.month > 12 {
			return fmt.Errorf("%s month %d out of range", d.name, d.month)
		}
		if d.day < 1 || d.day > daysInMonth(d.year, d.month) {
			return fmt.Errorf("%s day %d out of range for %d-%02d", d.name, d.day, d.year, d.month)
		}
	}
	if input.MonthlyGrossSalary.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly gross salary cannot be negative")
	}
	if input.CumulativeTaxBase.LessThan(decimal.Zero) {
		return fmt.Errorf("cumulative tax base cannot be negative")
	}
	if input.CalculationBasisDays < 0 {
		return fmt.Errorf("calculation basis days cannot be negative")
	}
	return nil
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
}
