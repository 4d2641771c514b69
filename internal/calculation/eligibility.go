package calculation

import "github.com/tazlab/tazgo/internal/domain"

// SeveranceEligibleDays returns the accrued severance days for the given
// tenure: AccrualDaysPerYear per full 365-day year, prorated over the
// partial final year, zero below the statutory minimum.
func SeveranceEligibleDays(totalWorkDays int, rules domain.SeveranceRules) int {
	if totalWorkDays < rules.MinimumWorkDays {
		return 0
	}
	fullYears := totalWorkDays / 365
	remainder := totalWorkDays % 365
	additionalDays := remainder * rules.AccrualDaysPerYear / 365
	return fullYears*rules.AccrualDaysPerYear + additionalDays
}

// NoticeEligibleDays returns the notice entitlement for the given tenure.
// Bracket bounds are exclusive: a tenure equal to UpTo falls into the next
// bracket. The final (open-ended) bracket catches everything above.
func NoticeEligibleDays(totalWorkDays int, brackets []domain.NoticeBracket) int {
	if totalWorkDays < 0 {
		return 0
	}
	for i, b := range brackets {
		if i == len(brackets)-1 {
			return b.Days
		}
		if totalWorkDays < b.UpTo {
			return b.Days
		}
	}
	return 0
}
