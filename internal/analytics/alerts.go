package analytics

import (
	"fmt"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

// TrendAlertMarginPercent is how far (in percent) the projection must exceed
// the previous month's total before a trend alert fires.
const TrendAlertMarginPercent = 10.0

// GenerateAlerts evaluates a forecast and the tenant's budgets, emitting
// warning records. Each rule is evaluated independently; a malformed budget
// is skipped without aborting the pass.
func GenerateAlerts(forecast model.Forecast, budgets []model.Budget, current []model.CategorySpending, previousMonthTotal decimal.Decimal) []model.Alert {
	alerts := make([]model.Alert, 0, len(budgets)+1)

	spentByCategory := make(map[int64]decimal.Decimal, len(current))
	for _, cs := range current {
		if cs.CategoryID != nil {
			spentByCategory[*cs.CategoryID] = cs.Total
		}
	}

	for _, budget := range budgets {
		alert, ok := evaluateBudget(budget, spentByCategory, forecast.CurrentSpent)
		if !ok {
			continue
		}
		alerts = append(alerts, alert)
	}

	if alert, ok := evaluateTrend(forecast.ProjectedTotal, previousMonthTotal); ok {
		alerts = append(alerts, alert)
	}

	return alerts
}

// evaluateBudget checks one budget's spend against its alert threshold.
// Budgets without a threshold, with a threshold outside [0,1], or with a
// non-positive amount are malformed and skipped.
func evaluateBudget(budget model.Budget, spentByCategory map[int64]decimal.Decimal, totalSpent decimal.Decimal) (model.Alert, bool) {
	if budget.AlertThreshold == nil {
		common.LogDebug("skipping budget without alert threshold", common.Fields{"budget_id": budget.ID})
		return model.Alert{}, false
	}
	threshold := *budget.AlertThreshold
	if threshold < 0 || threshold > 1 || !budget.Amount.IsPositive() {
		common.LogDebug("skipping malformed budget", common.Fields{"budget_id": budget.ID})
		return model.Alert{}, false
	}

	spent := totalSpent
	label := "total spending"
	if budget.CategoryID != nil {
		spent = spentByCategory[*budget.CategoryID]
		label = budget.CategoryName
		if label == "" {
			label = model.UncategorizedName
		}
	}

	ratio := spent.Div(budget.Amount).InexactFloat64()
	if ratio < threshold {
		return model.Alert{}, false
	}

	severity := model.SeverityWarning
	if ratio >= 1 {
		severity = model.SeverityCritical
	}

	return model.Alert{
		Kind:         model.AlertBudgetThreshold,
		Severity:     severity,
		CategoryName: budget.CategoryName,
		Amount:       spent,
		Message: fmt.Sprintf("%s has reached %.0f%% of its %s budget",
			label, ratio*100, budget.Period),
	}, true
}

// evaluateTrend fires when the projection materially exceeds last month.
func evaluateTrend(projected, previousMonthTotal decimal.Decimal) (model.Alert, bool) {
	if !previousMonthTotal.IsPositive() {
		return model.Alert{}, false
	}

	margin := decimal.NewFromFloat(1 + TrendAlertMarginPercent/100)
	if !projected.GreaterThan(previousMonthTotal.Mul(margin)) {
		return model.Alert{}, false
	}

	overPct := projected.Sub(previousMonthTotal).
		Div(previousMonthTotal).
		Mul(decimal.NewFromInt(100)).
		Round(0)

	return model.Alert{
		Kind:     model.AlertSpendingTrend,
		Severity: model.SeverityWarning,
		Amount:   projected,
		Message: fmt.Sprintf("Projected spending of %s is %s%% above last month's total",
			projected.StringFixed(2), overPct.String()),
	}, true
}
