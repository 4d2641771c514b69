package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tazlab/tazgo/internal/domain"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestWorkDays_InclusiveCounting(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day counts as one", date(2024, 3, 10), date(2024, 3, 10), 1},
		{"consecutive days count both boundaries", date(2024, 3, 10), date(2024, 3, 11), 2},
		{"full non-leap year", date(2023, 1, 1), date(2023, 12, 31), 365},
		{"leap day included", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"five years spanning two leap years", date(2020, 1, 1), date(2025, 1, 1), 1828},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkDays(tt.start, tt.end))
		})
	}
}

func TestWorkDays_ReversedRange(t *testing.T) {
	// Pure arithmetic: a reversed range yields a non-positive count. The
	// engine rejects such input before this function is reached.
	got := WorkDays(date(2024, 3, 11), date(2024, 3, 10))
	assert.LessOrEqual(t, got, 0, "Reversed range should not produce a positive day count")
}

func TestWorkPeriod_FixedLengthDecomposition(t *testing.T) {
	tests := []struct {
		name      string
		totalDays int
		want      domain.Period
	}{
		{"zero days", 0, domain.Period{}},
		{"under a month", 29, domain.Period{Days: 29}},
		{"exactly one month", 30, domain.Period{Months: 1}},
		{"one day short of a year", 364, domain.Period{Months: 12, Days: 4}},
		{"exactly one year", 365, domain.Period{Years: 1}},
		{"five years and three days", 1828, domain.Period{Years: 5, Days: 3}},
		{"years months and days", 365 + 61, domain.Period{Years: 1, Months: 2, Days: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkPeriod(tt.totalDays))
		})
	}
}

func TestWorkPeriod_NegativeClampsToZero(t *testing.T) {
	assert.Equal(t, domain.Period{}, WorkPeriod(-10))
}
