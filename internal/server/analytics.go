package server

import (
	"github.com/gin-gonic/gin"
	"github.com/joshsymonds/saffron/internal/analytics"
	"github.com/joshsymonds/saffron/internal/timeframe"
)

// handleForecast serves GET /analytics/forecast: the month-end spending
// projection with alerts and a previous-month comparison.
func (s *Server) handleForecast(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	ctx := c.Request.Context()
	now := s.now()
	month := timeframe.Current(timeframe.PeriodMonth, now)
	prevMonth := timeframe.Previous(timeframe.PeriodMonth, now)

	expenses, err := s.store.GetExpensesByDateRange(ctx, userID, month.Start, month.End)
	if err != nil {
		fail(c, err)
		return
	}
	currentSpending := analytics.AggregateByCategory(expenses)
	currentSpent := analytics.TotalSpending(currentSpending)

	history, err := s.store.GetSpendingHistory(ctx, userID, month.Start)
	if err != nil {
		fail(c, err)
		return
	}

	recurring, err := s.store.GetActiveRecurringExpenses(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}

	budgets, err := s.store.GetActiveBudgets(ctx, userID)
	if err != nil {
		fail(c, err)
		return
	}

	prevExpenses, err := s.store.GetExpensesByDateRange(ctx, userID, prevMonth.Start, prevMonth.End)
	if err != nil {
		fail(c, err)
		return
	}
	previousMonthTotal := analytics.TotalSpending(analytics.AggregateByCategory(prevExpenses))

	forecast := analytics.BuildForecast(now, currentSpent, history, recurring)
	alerts := analytics.GenerateAlerts(forecast, budgets, currentSpending, previousMonthTotal)

	respondOK(c, gin.H{
		"forecast": forecast,
		"alerts":   alerts,
		"comparison": gin.H{
			"previous_month_total":  previousMonthTotal,
			"projected_vs_previous": analytics.PercentChange(forecast.ProjectedTotal, previousMonthTotal),
		},
	})
}

// handleSpendingChange serves GET /analytics/spending-change: per-category
// deltas between the current period and the one before it.
func (s *Server) handleSpendingChange(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	period, err := timeframe.ParsePeriod(c.DefaultQuery("period", string(timeframe.PeriodMonth)))
	if err != nil {
		respondError(c, 400, "period must be one of week, month, quarter, year")
		return
	}

	ctx := c.Request.Context()
	now := s.now()
	current := timeframe.Current(period, now)
	previous := timeframe.Previous(period, now)

	currentExpenses, err := s.store.GetExpensesByDateRange(ctx, userID, current.Start, current.End)
	if err != nil {
		fail(c, err)
		return
	}
	previousExpenses, err := s.store.GetExpensesByDateRange(ctx, userID, previous.Start, previous.End)
	if err != nil {
		fail(c, err)
		return
	}

	comparison := analytics.Compare(
		analytics.AggregateByCategory(currentExpenses),
		analytics.AggregateByCategory(previousExpenses),
	)

	respondOK(c, gin.H{
		"categories":          comparison.Categories,
		"current_total":       comparison.CurrentTotal,
		"previous_total":      comparison.PreviousTotal,
		"total_delta":         comparison.TotalDelta,
		"total_delta_percent": comparison.TotalDeltaPercent,
		"period":              period,
		"current_period":      current,
		"previous_period":     previous,
	})
}
