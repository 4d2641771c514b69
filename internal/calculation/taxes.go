package calculation

import (
	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
)

// IncomeTax computes progressive income tax on taxableAmount, given that
// cumulativeBase of income has already been taxed this calendar year. The
// new income occupies [cumulativeBase, cumulativeBase+taxableAmount); each
// bracket taxes its overlap with that window at its marginal rate, so income
// straddling a bracket boundary is split correctly.
func IncomeTax(taxableAmount, cumulativeBase decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if taxableAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if cumulativeBase.LessThan(decimal.Zero) {
		cumulativeBase = decimal.Zero
	}

	upper := cumulativeBase.Add(taxableAmount)
	totalTax := decimal.Zero
	for _, bracket := range brackets {
		if bracket.Min.GreaterThanOrEqual(upper) {
			break
		}
		lo := decimal.Max(cumulativeBase, bracket.Min)
		hi := decimal.Min(upper, bracket.Max)
		if hi.GreaterThan(lo) {
			totalTax = totalTax.Add(hi.Sub(lo).Mul(bracket.Rate))
		}
	}
	return totalTax
}

// StampTax applies the flat stamp tax rate to a gross amount.
func StampTax(grossAmount decimal.Decimal, rc domain.RegulatoryConfig) decimal.Decimal {
	if grossAmount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return grossAmount.Mul(rc.StampTaxRate)
}
