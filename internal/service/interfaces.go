// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

// ExpenseFilter defines filtering options for expense queries.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *int64
	Limit      int
	Offset     int
}

// SpendingHistory summarizes a tenant's spend prior to some cutoff: the
// total amount and the number of distinct days with at least one expense.
type SpendingHistory struct {
	Total      decimal.Decimal
	ActiveDays int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Expense operations
	SaveExpenses(ctx context.Context, expenses []model.Expense) error
	GetExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]model.Expense, error)
	GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.Expense, error)
	GetSpendingHistory(ctx context.Context, userID string, before time.Time) (*SpendingHistory, error)
	DeleteExpense(ctx context.Context, userID, id string) error

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, name, icon, color string, isBusiness bool) (*model.Category, error)

	// Recurring expense operations
	CreateRecurringExpense(ctx context.Context, recurring *model.RecurringExpense) error
	GetActiveRecurringExpenses(ctx context.Context, userID string) ([]model.RecurringExpense, error)

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) error
	GetActiveBudgets(ctx context.Context, userID string) ([]model.Budget, error)

	// Merchant rule operations. GetMerchantRules returns active rules in
	// match order: priority desc, match_count desc, id asc.
	CreateMerchantRule(ctx context.Context, rule *model.MerchantRule) error
	GetMerchantRules(ctx context.Context, userID string) ([]model.MerchantRule, error)
	DeleteMerchantRule(ctx context.Context, userID string, id int64) error
	IncrementMerchantRuleMatchCount(ctx context.Context, id int64) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for best-effort operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
