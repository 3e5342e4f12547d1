// Package model defines the core data structures for the saffron application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedName is the category label applied to expenses that have no
// category assigned.
const UncategorizedName = "Uncategorized"

// Expense represents a single spending record for one tenant.
type Expense struct {
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Vendor       string          `json:"vendor"`
	Description  string          `json:"description,omitempty"`
	CategoryName string          `json:"category_name"`
	CategoryIcon string          `json:"category_icon,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
}

// CategoryLabel returns the category name, falling back to the
// uncategorized sentinel when the expense has no category.
func (e *Expense) CategoryLabel() string {
	if e.CategoryID == nil || e.CategoryName == "" {
		return UncategorizedName
	}
	return e.CategoryName
}

// CategorySpending holds the aggregated spend for one category over a period.
type CategorySpending struct {
	CategoryID   *int64          `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	CategoryIcon string          `json:"category_icon,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}
