package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tazlab/tazgo/internal/domain"
)

func TestSeveranceEligibleDays_MinimumTenureThreshold(t *testing.T) {
	rules := domain.Default2025().SeveranceRules

	tests := []struct {
		name      string
		totalDays int
		want      int
	}{
		{"one day short of eligibility", 364, 0},
		{"exactly one year", 365, 30},
		{"two full years", 730, 60},
		{"zero days", 0, 0},
		{"negative stays zero", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeveranceEligibleDays(tt.totalDays, rules))
		})
	}
}

func TestSeveranceEligibleDays_PartialYearProration(t *testing.T) {
	rules := domain.Default2025().SeveranceRules

	// One year plus half a year: 30 + floor(182*30/365) = 30 + 14.
	assert.Equal(t, 44, SeveranceEligibleDays(365+182, rules))

	// Five years plus three days prorate to zero additional days.
	assert.Equal(t, 150, SeveranceEligibleDays(1828, rules))

	// The day before a full extra year accrues 29, not 30.
	assert.Equal(t, 59, SeveranceEligibleDays(365+364, rules))
}

func TestNoticeEligibleDays_StepFunction(t *testing.T) {
	brackets := domain.Default2025().SeveranceRules.NoticeBrackets

	tests := []struct {
		totalDays int
		want      int
	}{
		{0, 0},
		{179, 0},
		{180, 15}, // boundary falls into the next bracket
		{546, 15},
		{547, 30},
		{1094, 30},
		{1095, 45},
		{20000, 45},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NoticeEligibleDays(tt.totalDays, brackets),
			"notice days for tenure %d", tt.totalDays)
	}
}

func TestNoticeEligibleDays_NeverNegative(t *testing.T) {
	brackets := domain.Default2025().SeveranceRules.NoticeBrackets
	assert.Equal(t, 0, NoticeEligibleDays(-1, brackets))
	assert.Equal(t, 0, NoticeEligibleDays(0, nil))
}
