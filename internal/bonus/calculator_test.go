package bonus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rules(pairs ...[2]float64) []BonusRule {
	out := make([]BonusRule, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, BonusRule{WeeklyThreshold: p[0], BonusAmount: p[1]})
	}
	return out
}

func TestLookupBonus(t *testing.T) {
	ruleSet := rules([2]float64{50000, 1000}, [2]float64{0, 0})

	t.Run("income below every paying threshold falls to the zero rule", func(t *testing.T) {
		assert.Equal(t, 0.0, lookupBonus(ruleSet, 45000))
	})

	t.Run("income exactly at the threshold wins it", func(t *testing.T) {
		assert.Equal(t, 1000.0, lookupBonus(ruleSet, 50000))
	})

	t.Run("income above the top threshold wins it", func(t *testing.T) {
		assert.Equal(t, 1000.0, lookupBonus(ruleSet, 72000))
	})

	t.Run("empty rule set pays nothing", func(t *testing.T) {
		assert.Equal(t, 0.0, lookupBonus(nil, 100000))
	})
}

func TestCalculate_FixedWindows(t *testing.T) {
	ruleSet := rules([2]float64{50000, 1000}, [2]float64{0, 0})

	t.Run("one qualifying week pays once", func(t *testing.T) {
		incomeByDay := map[int]float64{
			1: 10000, 3: 20000, 7: 20000, // window 1: 50000
			8: 5000, // window 2: 5000
		}

		summary := Calculate(ruleSet, incomeByDay, 2026, time.April)

		assert.Len(t, summary.Windows, 5) // April has 30 days, remainder 29-30
		assert.Equal(t, 50000.0, summary.Windows[0].Income)
		assert.Equal(t, 1000.0, summary.Windows[0].Bonus)
		assert.Equal(t, 5000.0, summary.Windows[1].Income)
		assert.Equal(t, 0.0, summary.Windows[1].Bonus)
		assert.Equal(t, 1000.0, summary.Total)
	})

	t.Run("window boundaries are days 1-7, 8-14, 15-21, 22-28", func(t *testing.T) {
		summary := Calculate(ruleSet, nil, 2026, time.January)

		assert.Equal(t, 1, summary.Windows[0].StartDay)
		assert.Equal(t, 7, summary.Windows[0].EndDay)
		assert.Equal(t, 8, summary.Windows[1].StartDay)
		assert.Equal(t, 14, summary.Windows[1].EndDay)
		assert.Equal(t, 15, summary.Windows[2].StartDay)
		assert.Equal(t, 21, summary.Windows[2].EndDay)
		assert.Equal(t, 22, summary.Windows[3].StartDay)
		assert.Equal(t, 28, summary.Windows[3].EndDay)
	})

	t.Run("empty month pays nothing across all windows", func(t *testing.T) {
		summary := Calculate(ruleSet, map[int]float64{}, 2026, time.March)
		assert.Equal(t, 0.0, summary.Total)
	})
}

func TestCalculate_RemainderWindow(t *testing.T) {
	ruleSet := rules([2]float64{50000, 1000}, [2]float64{0, 0})

	t.Run("remainder is prorated from its weekly equivalent", func(t *testing.T) {
		// January has 31 days, remainder days 29-31.
		incomeByDay := map[int]float64{
			29: 10000,
			30: 6000,
			31: 8000, // 24000 over 3 days -> weekly equivalent 56000
		}

		summary := Calculate(ruleSet, incomeByDay, 2026, time.January)

		rem := summary.Windows[4]
		assert.Equal(t, 29, rem.StartDay)
		assert.Equal(t, 31, rem.EndDay)
		assert.Equal(t, 24000.0, rem.Income)
		// weekly equivalent 56000 qualifies for 1000, prorated 1000/7*3
		assert.InDelta(t, 1000.0/7*3, rem.Bonus, 0.0001)
		assert.InDelta(t, 1000.0/7*3, summary.Total, 0.0001)
	})

	t.Run("weekly equivalent below threshold pays nothing", func(t *testing.T) {
		incomeByDay := map[int]float64{29: 1000, 30: 1000, 31: 1000}

		summary := Calculate(ruleSet, incomeByDay, 2026, time.January)

		assert.Equal(t, 0.0, summary.Windows[4].Bonus)
	})

	t.Run("28 day month has no remainder window", func(t *testing.T) {
		// February 2026 has 28 days.
		summary := Calculate(ruleSet, map[int]float64{28: 60000}, 2026, time.February)

		assert.Len(t, summary.Windows, 4)
	})

	t.Run("leap february keeps a one day remainder", func(t *testing.T) {
		// February 2028 has 29 days.
		incomeByDay := map[int]float64{29: 8000} // weekly equivalent 56000

		summary := Calculate(ruleSet, incomeByDay, 2028, time.February)

		assert.Len(t, summary.Windows, 5)
		assert.InDelta(t, 1000.0/7, summary.Windows[4].Bonus, 0.0001)
	})
}
