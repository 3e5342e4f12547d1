package analytics

import (
	"sort"
	"time"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/service"
	"github.com/joshsymonds/saffron/internal/timeframe"
	"github.com/shopspring/decimal"
)

// upcomingLimit caps how many recurring charges a forecast lists.
const upcomingLimit = 5

// avgDailyPrecision is the decimal scale used when dividing spend by days.
const avgDailyPrecision = 4

// AvgDailySpend computes the historical mean daily spend: total historical
// spend over the number of distinct days with activity. With no history it
// falls back to the current month's spend over the days elapsed so far,
// floored at one day.
func AvgDailySpend(history *service.SpendingHistory, currentSpent decimal.Decimal, daysElapsed int) decimal.Decimal {
	if history != nil && history.ActiveDays > 0 {
		return history.Total.DivRound(decimal.NewFromInt(int64(history.ActiveDays)), avgDailyPrecision)
	}

	if daysElapsed < 1 {
		daysElapsed = 1
	}
	return currentSpent.DivRound(decimal.NewFromInt(int64(daysElapsed)), avgDailyPrecision)
}

// RecurringRemaining sums the active recurring charges due between now and
// the end of the month, and returns them ordered by due date.
func RecurringRemaining(recurring []model.RecurringExpense, now time.Time) (decimal.Decimal, []model.RecurringExpense) {
	monthEnd := timeframe.MonthEnd(now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total := decimal.Zero
	var upcoming []model.RecurringExpense
	for _, r := range recurring {
		if !r.IsActive {
			continue
		}
		due := r.NextDueDate
		if due.Before(today) || due.After(monthEnd) {
			continue
		}
		total = total.Add(r.Amount)
		upcoming = append(upcoming, r)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].NextDueDate.Before(upcoming[j].NextDueDate)
	})

	return total, upcoming
}

// Project extrapolates month-end spend:
//
//	projected = current_spent + avg_daily_spend × days_remaining + recurring_remaining
//
// Negative inputs are treated as zero, so the projection is monotonically
// non-decreasing in each input and never negative.
func Project(currentSpent, avgDaily, recurringRemaining decimal.Decimal, daysRemaining int) decimal.Decimal {
	currentSpent = clampNonNegative(currentSpent)
	avgDaily = clampNonNegative(avgDaily)
	recurringRemaining = clampNonNegative(recurringRemaining)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return currentSpent.
		Add(avgDaily.Mul(decimal.NewFromInt(int64(daysRemaining)))).
		Add(recurringRemaining)
}

// BuildForecast assembles the month-end forecast for one tenant from
// already-fetched records.
func BuildForecast(now time.Time, currentSpent decimal.Decimal, history *service.SpendingHistory, recurring []model.RecurringExpense) model.Forecast {
	daysElapsed := timeframe.DaysElapsedInMonth(now)
	daysRemaining := timeframe.DaysRemainingInMonth(now)

	avgDaily := AvgDailySpend(history, currentSpent, daysElapsed)
	recurringRemaining, upcoming := RecurringRemaining(recurring, now)
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	return model.Forecast{
		ProjectedTotal:     Project(currentSpent, avgDaily, recurringRemaining, daysRemaining),
		CurrentSpent:       currentSpent,
		AvgDailySpend:      avgDaily,
		RecurringRemaining: recurringRemaining,
		DaysRemaining:      daysRemaining,
		UpcomingRecurring:  upcoming,
	}
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
