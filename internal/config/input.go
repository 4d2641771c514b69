package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of case files and regulatory tables.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// CaseFile is the YAML document describing one calculation: the employment
// record plus an optional inline regulatory override. Money fields are
// strings because they originate in web form fields.
type CaseFile struct {
	Input      InputRecord              `yaml:"input"`
	Regulatory *domain.RegulatoryConfig `yaml:"regulatory,omitempty"`
}

// InputRecord mirrors the form-level shape of a calculation request.
type InputRecord struct {
	WorkStartYear  int `yaml:"work_start_year"`
	WorkStartMonth int `yaml:"work_start_month"`
	WorkStartDay   int `yaml:"work_start_day"`
	WorkEndYear    int `yaml:"work_end_year"`
	WorkEndMonth   int `yaml:"work_end_month"`
	WorkEndDay     int `yaml:"work_end_day"`

	MonthlyGrossSalary   string `yaml:"monthly_gross_salary"`
	CumulativeTaxBase    string `yaml:"cumulative_tax_base"`
	CalculationBasisDays int    `yaml:"calculation_basis_days"`
}

// ToCalculationInput converts the form-level record to the engine's typed
// input, applying the lenient amount parsing rule to the string fields.
func (r InputRecord) ToCalculationInput() domain.CalculationInput {
	return domain.CalculationInput{
		WorkStartYear:        r.WorkStartYear,
		WorkStartMonth:       r.WorkStartMonth,
		WorkStartDay:         r.WorkStartDay,
		WorkEndYear:          r.WorkEndYear,
		WorkEndMonth:         r.WorkEndMonth,
		WorkEndDay:           r.WorkEndDay,
		MonthlyGrossSalary:   ParseAmount(r.MonthlyGrossSalary),
		CumulativeTaxBase:    ParseAmount(r.CumulativeTaxBase),
		CalculationBasisDays: r.CalculationBasisDays,
	}
}

// ParseAmount parses a form-field money string. Empty or malformed input
// yields zero; this mirrors the upstream form behavior, and the tests pin it
// so the fallback can never become accidental.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// LoadFromFile loads a case file from a YAML document.
func (ip *InputParser) LoadFromFile(filename string) (*CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateCase(&cf); err != nil {
		return nil, fmt.Errorf("case file validation failed: %w", err)
	}

	return &cf, nil
}

// LoadRegulatoryFile loads a standalone regulatory table.
func (ip *InputParser) LoadRegulatoryFile(filename string) (*domain.RegulatoryConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rc domain.RegulatoryConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rc.Validate(); err != nil {
		return nil, fmt.Errorf("regulatory table validation failed: %w", err)
	}

	return &rc, nil
}

// RegulatoryTable returns the table to calculate with: the inline override
// when the case file carries one, otherwise the built-in 2025 defaults.
func (cf *CaseFile) RegulatoryTable() domain.RegulatoryConfig {
	if cf.Regulatory != nil {
		return *cf.Regulatory
	}
	return domain.Default2025()
}

// ValidateCase validates the loaded case file.
func (ip *InputParser) ValidateCase(cf *CaseFile) error {
	if err := ip.validateInputRecord(&cf.Input); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	if cf.Regulatory != nil {
		if err := cf.Regulatory.Validate(); err != nil {
			return fmt.Errorf("regulatory override validation failed: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateInputRecord(r *InputRecord) error {
	if r.WorkStartYear == 0 {
		return fmt.Errorf("work start year is required")
	}
	if r.WorkEndYear == 0 {
		return fmt.Errorf("work end year is required")
	}
	if r.WorkStartMonth < 1 || r.WorkStartMonth > 12 {
		return fmt.Errorf("work start month must be between 1 and 12")
	}
	if r.WorkEndMonth < 1 || r.WorkEndMonth > 12 {
		return fmt.Errorf("work end month must be between 1 and 12")
	}
	if r.WorkStartDay < 1 || r.WorkStartDay > 31 {
		return fmt.Errorf("work start day must be between 1 and 31")
	}
	if r.WorkEndDay < 1 || r.WorkEndDay > 31 {
		return fmt.Errorf("work end day must be between 1 and 31")
	}
	if r.CalculationBasisDays < 0 {
		return fmt.Errorf("calculation basis days cannot be negative")
	}
	if ParseAmount(r.MonthlyGrossSalary).LessThan(decimal.Zero) {
		return fmt.Errorf("monthly gross salary cannot be negative")
	}
	if ParseAmount(r.CumulativeTaxBase).LessThan(decimal.Zero) {
		return fmt.Errorf("cumulative tax base cannot be negative")
	}
	return nil
}
