package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RegulatoryConfig contains the year-versioned legal data the calculation
// depends on: the progressive income tax schedule, the stamp tax rate, the
// semester severance ceilings and the statutory severance/notice rules.
// It is loaded from regulatory.yaml (or taken from Default2025) and treated
// as read-only by the engine; swapping tax years never touches the algorithm.
type RegulatoryConfig struct {
	Metadata          RegulatoryMetadata `yaml:"metadata" json:"metadata"`
	StampTaxRate      decimal.Decimal    `yaml:"stamp_tax_rate" json:"stamp_tax_rate"`
	IncomeTaxBrackets []TaxBracket       `yaml:"income_tax_brackets" json:"income_tax_brackets"`
	// Semester ceilings: the maximum monthly salary that may serve as the
	// severance wage basis. The ceiling is reset by law every six months.
	SeveranceCeilingH1 decimal.Decimal `yaml:"severance_ceiling_h1" json:"severance_ceiling_h1"`
	SeveranceCeilingH2 decimal.Decimal `yaml:"severance_ceiling_h2" json:"severance_ceiling_h2"`
	SeveranceRules     SeveranceRules  `yaml:"severance_rules" json:"severance_rules"`
}

// RegulatoryMetadata describes the provenance of the regulatory data.
type RegulatoryMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// TaxBracket maps a half-open interval [Min, Max) of cumulative yearly
// taxable income to a marginal rate. Brackets are ordered ascending and
// non-overlapping; the top bracket carries the BracketMaxSentinel.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SeveranceRules contains the statutory thresholds for eligibility.
type SeveranceRules struct {
	// MinimumWorkDays is the tenure below which no severance accrues.
	MinimumWorkDays int `yaml:"minimum_work_days" json:"minimum_work_days"`
	// AccrualDaysPerYear is the paid days earned per full year of service.
	AccrualDaysPerYear int `yaml:"accrual_days_per_year" json:"accrual_days_per_year"`
	// NoticeBrackets maps total elapsed service days to the notice-day
	// entitlement; UpTo bounds are exclusive, the last bracket is open.
	NoticeBrackets []NoticeBracket `yaml:"notice_brackets" json:"notice_brackets"`
}

// NoticeBracket is one step of the notice entitlement function. A zero UpTo
// marks the open-ended final step.
type NoticeBracket struct {
	UpTo int `yaml:"up_to" json:"up_to"`
	Days int `yaml:"days" json:"days"`
}

// BracketMaxSentinel stands in for an unbounded top bracket.
var BracketMaxSentinel = decimal.NewFromInt(999999999999)

// Default2025 returns the regulatory table for tax year 2025.
func Default2025() RegulatoryConfig {
	return RegulatoryConfig{
		Metadata: RegulatoryMetadata{
			DataYear:    2025,
			LastUpdated: "2025-01-01",
			Description: "Turkish severance and income tax parameters for 2025",
		},
		StampTaxRate: decimal.NewFromFloat(0.00759),
		IncomeTaxBrackets: []TaxBracket{
			{Min: decimal.Zero, Max: decimal.NewFromInt(158000), Rate: decimal.NewFromFloat(0.15)},
			{Min: decimal.NewFromInt(158000), Max: decimal.NewFromInt(330000), Rate: decimal.NewFromFloat(0.20)},
			{Min: decimal.NewFromInt(330000), Max: decimal.NewFromInt(1200000), Rate: decimal.NewFromFloat(0.27)},
			{Min: decimal.NewFromInt(1200000), Max: decimal.NewFromInt(4300000), Rate: decimal.NewFromFloat(0.35)},
			{Min: decimal.NewFromInt(4300000), Max: BracketMaxSentinel, Rate: decimal.NewFromFloat(0.40)},
		},
		SeveranceCeilingH1: decimal.NewFromFloat(46655.43),
		SeveranceCeilingH2: decimal.NewFromFloat(53919.68),
		SeveranceRules: SeveranceRules{
			MinimumWorkDays:    365,
			AccrualDaysPerYear: 30,
			NoticeBrackets: []NoticeBracket{
				{UpTo: 180, Days: 0},
				{UpTo: 547, Days: 15},
				{UpTo: 1095, Days: 30},
				{UpTo: 0, Days: 45},
			},
		},
	}
}

// Validate checks the structural invariants the engine relies on.
func (rc *RegulatoryConfig) Validate() error {
	if rc.StampTaxRate.LessThan(decimal.Zero) || rc.StampTaxRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("stamp tax rate must be in [0, 1), got %s", rc.StampTaxRate)
	}
	if len(rc.IncomeTaxBrackets) == 0 {
		return fmt.Errorf("at least one income tax bracket is required")
	}
	for i, b := range rc.IncomeTaxBrackets {
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max %s must exceed min %s", i, b.Max, b.Min)
		}
		if b.Rate.LessThan(decimal.Zero) || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be in [0, 1), got %s", i, b.Rate)
		}
		if i == 0 {
			if !b.Min.IsZero() {
				return fmt.Errorf("first bracket must start at 0, got %s", b.Min)
			}
			continue
		}
		if !b.Min.Equal(rc.IncomeTaxBrackets[i-1].Max) {
			return fmt.Errorf("bracket %d: min %s leaves a gap after previous max %s", i, b.Min, rc.IncomeTaxBrackets[i-1].Max)
		}
	}
	if rc.SeveranceCeilingH1.LessThanOrEqual(decimal.Zero) || rc.SeveranceCeilingH2.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("severance ceilings must be positive")
	}
	if rc.SeveranceRules.MinimumWorkDays <= 0 {
		return fmt.Errorf("minimum work days must be positive")
	}
	if rc.SeveranceRules.AccrualDaysPerYear <= 0 {
		return fmt.Errorf("accrual days per year must be positive")
	}
	if len(rc.SeveranceRules.NoticeBrackets) == 0 {
		return fmt.Errorf("at least one notice bracket is required")
	}
	last := len(rc.SeveranceRules.NoticeBrackets) - 1
	for i, nb := range rc.SeveranceRules.NoticeBrackets {
		if nb.Days < 0 {
			return fmt.Errorf("notice bracket %d: days cannot be negative", i)
		}
		if i == last {
			if nb.UpTo != 0 {
				return fmt.Errorf("final notice bracket must be open-ended (up_to 0), got %d", nb.UpTo)
			}
			continue
		}
		if nb.UpTo <= 0 {
			return fmt.Errorf("notice bracket %d: up_to must be positive", i)
		}
		if i > 0 && nb.UpTo <= rc.SeveranceRules.NoticeBrackets[i-1].UpTo {
			return fmt.Errorf("notice bracket %d: up_to %d must increase", i, nb.UpTo)
		}
	}
	return nil
}
