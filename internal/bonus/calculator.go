package bonus

import (
	"sort"
	"time"
)

// WindowBreakdown reports one calculation window of a month.
type WindowBreakdown struct {
	StartDay int     `json:"start_day"`
	EndDay   int     `json:"end_day"`
	Income   float64 `json:"income"`
	Bonus    float64 `json:"bonus"`
}

// MonthlySummary is the result of a monthly bonus calculation.
type MonthlySummary struct {
	EmployeeID string            `json:"employee_id"`
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Windows    []WindowBreakdown `json:"windows"`
	Total      float64           `json:"total"`
}

// lookupBonus returns the payout for a weekly income. Rules are scanned
// descending by threshold; the first threshold <= income wins. No rule
// matching means no bonus.
func lookupBonus(rules []BonusRule, income float64) float64 {
	for _, r := range rules {
		if r.WeeklyThreshold <= income {
			return r.BonusAmount
		}
	}
	return 0
}

// Calculate buckets an employee's daily income into the four fixed weekly
// windows (days 1-7, 8-14, 15-21, 22-28) plus a remainder window for days
// 29 to month end. The remainder is scored against its weekly-equivalent
// income and the payout prorated back to the remainder length.
func Calculate(rules []BonusRule, incomeByDay map[int]float64, year int, month time.Month) MonthlySummary {
	sorted := make([]BonusRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].WeeklyThreshold > sorted[j].WeeklyThreshold
	})

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	summary := MonthlySummary{
		Year:  year,
		Month: int(month),
	}

	for w := 0; w < 4; w++ {
		startDay := w*7 + 1
		endDay := startDay + 6

		var income float64
		for d := startDay; d <= endDay; d++ {
			income += incomeByDay[d]
		}

		bonus := lookupBonus(sorted, income)
		summary.Windows = append(summary.Windows, WindowBreakdown{
			StartDay: startDay,
			EndDay:   endDay,
			Income:   income,
			Bonus:    bonus,
		})
		summary.Total += bonus
	}

	if daysInMonth > 28 {
		remDays := daysInMonth - 28

		var income float64
		for d := 29; d <= daysInMonth; d++ {
			income += incomeByDay[d]
		}

		weeklyEquivalent := income / float64(remDays) * 7
		bonus := lookupBonus(sorted, weeklyEquivalent) / 7 * float64(remDays)
		summary.Windows = append(summary.Windows, WindowBreakdown{
			StartDay: 29,
			EndDay:   daysInMonth,
			Income:   income,
			Bonus:    bonus,
		})
		summary.Total += bonus
	}

	return summary
}
