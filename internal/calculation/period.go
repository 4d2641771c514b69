package calculation

import (
	"time"

	"github.com/tazlab/tazgo/internal/domain"
)

const hoursPerDay = 24

// WorkDays returns the inclusive day count between start and end: both
// boundary dates count as worked days. The result is not meaningful when
// end precedes start; the engine rejects that range before calling here.
func WorkDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/hoursPerDay) + 1
}

// WorkPeriod decomposes a total day count into the 365/30 approximation used
// on Turkish severance documents: fixed-length years and months, remainder
// as days. This is a statutory convention, not a calendar breakdown, and the
// figures must match what payroll offices print, so it stays exactly this.
func WorkPeriod(totalDays int) domain.Period {
	if totalDays < 0 {
		totalDays = 0
	}
	years := totalDays / 365
	remaining := totalDays % 365
	return domain.Period{
		Years:  years,
		Months: remaining / 30,
		Days:   remaining % 30,
	}
}
