package model

import "github.com/shopspring/decimal"

// Forecast projects month-end spending from elapsed spend, historical daily
// averages, and known recurring charges. Derived per request, never persisted.
type Forecast struct {
	UpcomingRecurring  []RecurringExpense `json:"upcoming_recurring"`
	ProjectedTotal     decimal.Decimal    `json:"projected_total"`
	CurrentSpent       decimal.Decimal    `json:"current_spent"`
	AvgDailySpend      decimal.Decimal    `json:"avg_daily_spend"`
	RecurringRemaining decimal.Decimal    `json:"recurring_remaining"`
	DaysRemaining      int                `json:"days_remaining"`
}

// AlertKind identifies the condition that produced an alert.
type AlertKind string

// Alert kinds.
const (
	AlertBudgetThreshold AlertKind = "budget_threshold"
	AlertSpendingTrend   AlertKind = "spending_trend"
)

// AlertSeverity grades how urgent an alert is.
type AlertSeverity string

// Alert severities.
const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a transient warning returned alongside a forecast.
type Alert struct {
	Kind         AlertKind       `json:"kind"`
	Severity     AlertSeverity   `json:"severity"`
	Message      string          `json:"message"`
	CategoryName string          `json:"category_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}
