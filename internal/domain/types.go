package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationInput contains everything needed for a single severance/notice
// compensation calculation. Date parts are plain integers (month 1-12) as
// they arrive from form fields; money fields are decimals, already parsed.
type CalculationInput struct {
	WorkStartYear  int `yaml:"work_start_year" json:"work_start_year"`
	WorkStartMonth int `yaml:"work_start_month" json:"work_start_month"`
	WorkStartDay   int `yaml:"work_start_day" json:"work_start_day"`
	WorkEndYear    int `yaml:"work_end_year" json:"work_end_year"`
	WorkEndMonth   int `yaml:"work_end_month" json:"work_end_month"`
	WorkEndDay     int `yaml:"work_end_day" json:"work_end_day"`

	MonthlyGrossSalary decimal.Decimal `yaml:"monthly_gross_salary" json:"monthly_gross_salary"`
	// CumulativeTaxBase is income already taxed this calendar year under the
	// progressive schedule; it shifts which bracket the notice pay falls into.
	CumulativeTaxBase decimal.Decimal `yaml:"cumulative_tax_base" json:"cumulative_tax_base"`
	// CalculationBasisDays is the divisor converting monthly salary to a
	// daily wage, normally 30.
	CalculationBasisDays int `yaml:"calculation_basis_days" json:"calculation_basis_days"`
}

// WorkStartDate builds the start date at UTC midnight.
func (in CalculationInput) WorkStartDate() time.Time {
	return time.Date(in.WorkStartYear, time.Month(in.WorkStartMonth), in.WorkStartDay, 0, 0, 0, 0, time.UTC)
}

// WorkEndDate builds the end date at UTC midnight.
func (in CalculationInput) WorkEndDate() time.Time {
	return time.Date(in.WorkEndYear, time.Month(in.WorkEndMonth), in.WorkEndDay, 0, 0, 0, 0, time.UTC)
}

// Period is the approximate service-time breakdown used on payroll documents:
// fixed 365-day years and 30-day months, not a calendar decomposition.
type Period struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// CompensationBreakdown holds one branch of the result (severance or notice).
// Severance carries no income tax; notice carries both taxes.
type CompensationBreakdown struct {
	EligibleDays int             `json:"eligible_days"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	IncomeTax    decimal.Decimal `json:"income_tax"`
	StampTax     decimal.Decimal `json:"stamp_tax"`
	NetAmount    decimal.Decimal `json:"net_amount"`
}

// TotalTax returns the combined tax burden of the branch.
func (b CompensationBreakdown) TotalTax() decimal.Decimal {
	return b.IncomeTax.Add(b.StampTax)
}

// CalculationResult is the full structured outcome of one calculation.
type CalculationResult struct {
	WorkStartDate time.Time `json:"work_start_date"`
	WorkEndDate   time.Time `json:"work_end_date"`
	TotalWorkDays int       `json:"total_work_days"`
	WorkPeriod    Period    `json:"work_period"`

	MonthlyGrossSalary decimal.Decimal `json:"monthly_gross_salary"`
	CumulativeTaxBase  decimal.Decimal `json:"cumulative_tax_base"`
	AppliedCeiling     decimal.Decimal `json:"applied_ceiling"`
	DailyGrossWage     decimal.Decimal `json:"daily_gross_wage"`

	Severance CompensationBreakdown `json:"severance"`
	Notice    CompensationBreakdown `json:"notice"`

	TotalGross decimal.Decimal `json:"total_gross"`
	TotalTax   decimal.Decimal `json:"total_tax"`
	TotalNet   decimal.Decimal `json:"total_net"`
}
