package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tazlab/tazgo/internal/domain"
)

// testRegulatory returns the 2025 table; tests rely on its published figures
// (15% bracket up to 158000, stamp tax 0.00759, ceilings 46655.43/53919.68).
func testRegulatory() domain.RegulatoryConfig {
	return domain.Default2025()
}

func TestIncomeTax_SingleBracket(t *testing.T) {
	rc := testRegulatory()

	// 10000 on a zero base sits entirely in the 15% bracket.
	got := IncomeTax(decimal.NewFromInt(10000), decimal.Zero, rc.IncomeTaxBrackets)
	assert.True(t, decimal.NewFromInt(1500).Equal(got), "expected 1500, got %s", got)
}

func TestIncomeTax_StraddlesBracketBoundary(t *testing.T) {
	rc := testRegulatory()

	// With 155000 already taxed, 10000 splits 3000 @ 15% and 7000 @ 20%.
	got := IncomeTax(decimal.NewFromInt(10000), decimal.NewFromInt(155000), rc.IncomeTaxBrackets)
	assert.True(t, decimal.NewFromInt(1850).Equal(got), "expected 450+1400=1850, got %s", got)
}

func TestIncomeTax_CumulativeBaseShiftsBracket(t *testing.T) {
	rc := testRegulatory()

	// The same amount is taxed entirely at 20% once the base passes 158000.
	got := IncomeTax(decimal.NewFromInt(10000), decimal.NewFromInt(200000), rc.IncomeTaxBrackets)
	assert.True(t, decimal.NewFromInt(2000).Equal(got), "expected 2000, got %s", got)
}

func TestIncomeTax_TopBracket(t *testing.T) {
	rc := testRegulatory()

	got := IncomeTax(decimal.NewFromInt(100000), decimal.NewFromInt(5000000), rc.IncomeTaxBrackets)
	assert.True(t, decimal.NewFromInt(40000).Equal(got), "expected flat 40%% above the top threshold, got %s", got)
}

func TestIncomeTax_ZeroAndNegativeAmounts(t *testing.T) {
	rc := testRegulatory()

	assert.True(t, IncomeTax(decimal.Zero, decimal.Zero, rc.IncomeTaxBrackets).IsZero())
	assert.True(t, IncomeTax(decimal.NewFromInt(-100), decimal.Zero, rc.IncomeTaxBrackets).IsZero())

	// A negative base is clamped rather than producing phantom overlap.
	got := IncomeTax(decimal.NewFromInt(10000), decimal.NewFromInt(-5000), rc.IncomeTaxBrackets)
	assert.True(t, decimal.NewFromInt(1500).Equal(got), "expected 1500 with clamped base, got %s", got)
}

func TestIncomeTax_FullScheduleSweep(t *testing.T) {
	rc := testRegulatory()

	// 400000 from a zero base: 158000@15% + 172000@20% + 70000@27%.
	want := decimal.NewFromInt(23700).Add(decimal.NewFromInt(34400)).Add(decimal.NewFromInt(18900))
	got := IncomeTax(decimal.NewFromInt(400000), decimal.Zero, rc.IncomeTaxBrackets)
	assert.True(t, want.Equal(got), "expected %s, got %s", want, got)
}

func TestStampTax_FlatRate(t *testing.T) {
	rc := testRegulatory()

	got := StampTax(decimal.NewFromInt(100000), rc)
	want := decimal.NewFromInt(100000).Mul(rc.StampTaxRate)
	assert.True(t, want.Equal(got), "expected %s, got %s", want, got)
}

func TestStampTax_NonPositiveGross(t *testing.T) {
	rc := testRegulatory()

	assert.True(t, StampTax(decimal.Zero, rc).IsZero())
	assert.True(t, StampTax(decimal.NewFromInt(-500), rc).IsZero())
}
