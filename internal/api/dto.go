package api

import (
	"github.com/tazlab/tazgo/internal/config"
	"github.com/tazlab/tazgo/internal/domain"
)

// CalculationRequest is the wire shape of a calculation. Money fields are
// strings because they come straight out of form inputs; the lenient
// parsing rule (malformed -> zero) applies, matching the form layer.
type CalculationRequest struct {
	WorkStartYear  int `json:"work_start_year"`
	WorkStartMonth int `json:"work_start_month"`
	WorkStartDay   int `json:"work_start_day"`
	WorkEndYear    int `json:"work_end_year"`
	WorkEndMonth   int `json:"work_end_month"`
	WorkEndDay     int `json:"work_end_day"`

	MonthlyGrossSalary   string `json:"monthly_gross_salary"`
	CumulativeTaxBase    string `json:"cumulative_tax_base"`
	CalculationBasisDays int    `json:"calculation_basis_days"`

	// Save records the result in the history store when one is configured.
	Save bool `json:"save,omitempty"`
}

// ToCalculationInput converts the request to the engine's typed input.
func (r CalculationRequest) ToCalculationInput() domain.CalculationInput {
	return domain.CalculationInput{
		WorkStartYear:        r.WorkStartYear,
		WorkStartMonth:       r.WorkStartMonth,
		WorkStartDay:         r.WorkStartDay,
		WorkEndYear:          r.WorkEndYear,
		WorkEndMonth:         r.WorkEndMonth,
		WorkEndDay:           r.WorkEndDay,
		MonthlyGrossSalary:   config.ParseAmount(r.MonthlyGrossSalary),
		CumulativeTaxBase:    config.ParseAmount(r.CumulativeTaxBase),
		CalculationBasisDays: r.CalculationBasisDays,
	}
}

// CalculationResponse wraps a result with the id it was saved under, if any.
type CalculationResponse struct {
	ID     int64                     `json:"id,omitempty"`
	Result *domain.CalculationResult `json:"result"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
