package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency represents the cadence of a recurring expense.
type Frequency string

// Recurring expense cadences.
const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether the frequency is one of the known cadences.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringExpense represents a charge with a fixed cadence and a known
// next due date, used to project future spend.
type RecurringExpense struct {
	NextDueDate time.Time       `json:"next_due_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Frequency   Frequency       `json:"frequency"`
	Amount      decimal.Decimal `json:"amount"`
	ID          int64           `json:"id"`
	IsActive    bool            `json:"is_active"`
}
