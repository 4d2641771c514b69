package calculation

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tazlab/tazgo/internal/domain"
)

// SeveranceCeiling returns the semester ceiling that applies to the given
// employment end date: H1 for January through June, H2 for the rest of the
// year. The start date never matters, only when employment ended.
func SeveranceCeiling(endDate time.Time, rc domain.RegulatoryConfig) decimal.Decimal {
	if endDate.Month() <= time.June {
		return rc.SeveranceCeilingH1
	}
	return rc.SeveranceCeilingH2
}

// DailyGrossWage derives the wage basis shared by both compensation types:
// the monthly salary capped at the legal ceiling, divided by the calculation
// basis days (normally 30).
func DailyGrossWage(monthlySalary decimal.Decimal, basisDays int, endDate time.Time, rc domain.RegulatoryConfig) decimal.Decimal {
	cappedSalary := decimal.Min(monthlySalary, SeveranceCeiling(endDate, rc))
	return cappedSalary.Div(decimal.NewFromInt(int64(basisDays)))
}
