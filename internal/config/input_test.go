package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCase = `
input:
  work_start_year: 2020
  work_start_month: 1
  work_start_day: 1
  work_end_year: 2025
  work_end_month: 1
  work_end_day: 1
  monthly_gross_salary: "80000"
  cumulative_tax_base: "0"
  calculation_basis_days: 30
`

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  decimal.Decimal
	}{
		{"plain integer", "80000", decimal.NewFromInt(80000)},
		{"decimal point", "53919.68", decimal.NewFromFloat(53919.68)},
		{"surrounding whitespace", "  1250.5  ", decimal.NewFromFloat(1250.5)},
		{"empty string", "", decimal.Zero},
		{"whitespace only", "   ", decimal.Zero},
		// Malformed input degrades to zero. This mirrors the form layer
		// upstream; the test pins the fallback so it stays deliberate.
		{"garbage", "abc", decimal.Zero},
		{"trailing garbage", "80000TL", decimal.Zero},
		{"double dot", "1.2.3", decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestLoadFromFile_ValidCase(t *testing.T) {
	parser := NewInputParser()

	cf, err := parser.LoadFromFile(writeTempFile(t, validCase))
	require.NoError(t, err)

	input := cf.Input.ToCalculationInput()
	assert.Equal(t, 2020, input.WorkStartYear)
	assert.Equal(t, 2025, input.WorkEndYear)
	assert.True(t, decimal.NewFromInt(80000).Equal(input.MonthlyGrossSalary))
	assert.True(t, input.CumulativeTaxBase.IsZero())
	assert.Equal(t, 30, input.CalculationBasisDays)

	rc := cf.RegulatoryTable()
	assert.Equal(t, 2025, rc.Metadata.DataYear, "defaults used when no override present")
}

func TestLoadFromFile_InlineRegulatoryOverride(t *testing.T) {
	parser := NewInputParser()

	cf, err := parser.LoadFromFile(writeTempFile(t, validCase+`
regulatory:
  stamp_tax_rate: "0.00759"
  income_tax_brackets:
    - {min: "0", max: "110000", rate: "0.15"}
    - {min: "110000", max: "999999999999", rate: "0.20"}
  severance_ceiling_h1: "35058.58"
  severance_ceiling_h2: "41828.42"
  severance_rules:
    minimum_work_days: 365
    accrual_days_per_year: 30
    notice_brackets:
      - {up_to: 180, days: 0}
      - {up_to: 547, days: 15}
      - {up_to: 1095, days: 30}
      - {up_to: 0, days: 45}
  metadata:
    data_year: 2024
`))
	require.NoError(t, err)

	rc := cf.RegulatoryTable()
	assert.Equal(t, 2024, rc.Metadata.DataYear)
	assert.True(t, decimal.NewFromFloat(35058.58).Equal(rc.SeveranceCeilingH1))
	assert.Len(t, rc.IncomeTaxBrackets, 2)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing start year",
			`
input:
  work_end_year: 2025
  work_end_month: 1
  work_end_day: 1
  work_start_month: 1
  work_start_day: 1
`,
			"work start year is required",
		},
		{
			"month out of range",
			`
input:
  work_start_year: 2020
  work_start_month: 13
  work_start_day: 1
  work_end_year: 2025
  work_end_month: 1
  work_end_day: 1
`,
			"work start month",
		},
		{
			"negative salary",
			`
input:
  work_start_year: 2020
  work_start_month: 1
  work_start_day: 1
  work_end_year: 2025
  work_end_month: 1
  work_end_day: 1
  monthly_gross_salary: "-100"
`,
			"salary cannot be negative",
		},
		{
			"broken override",
			validCase + `
regulatory:
  stamp_tax_rate: "2.0"
`,
			"regulatory override validation failed",
		},
		{"not yaml", "input: [", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.LoadFromFile(writeTempFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadRegulatoryFile(t *testing.T) {
	parser := NewInputParser()

	path := writeTempFile(t, `
metadata:
  data_year: 2025
stamp_tax_rate: "0.00759"
income_tax_brackets:
  - {min: "0", max: "158000", rate: "0.15"}
  - {min: "158000", max: "999999999999", rate: "0.20"}
severance_ceiling_h1: "46655.43"
severance_ceiling_h2: "53919.68"
severance_rules:
  minimum_work_days: 365
  accrual_days_per_year: 30
  notice_brackets:
    - {up_to: 180, days: 0}
    - {up_to: 547, days: 15}
    - {up_to: 1095, days: 30}
    - {up_to: 0, days: 45}
`)

	rc, err := parser.LoadRegulatoryFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2025, rc.Metadata.DataYear)
	assert.True(t, decimal.NewFromFloat(46655.43).Equal(rc.SeveranceCeilingH1))
}
