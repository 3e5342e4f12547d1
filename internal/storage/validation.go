package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshsymonds/saffron/internal/model"
)

// Validation errors.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrEmptySlice          = errors.New("slice cannot be empty")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")
	ErrInvalidExpense      = errors.New("invalid expense")
	ErrInvalidBudget       = errors.New("invalid budget")
	ErrInvalidRecurring    = errors.New("invalid recurring expense")
	ErrInvalidMerchantRule = errors.New("invalid merchant rule")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateExpenses validates a slice of expenses.
func validateExpenses(expenses []model.Expense) error {
	if expenses == nil {
		return fmt.Errorf("%w: expenses", ErrNilParameter)
	}
	if len(expenses) == 0 {
		return fmt.Errorf("%w: expenses", ErrEmptySlice)
	}

	for i := range expenses {
		if err := validateExpense(&expenses[i]); err != nil {
			return fmt.Errorf("expense at index %d: %w", i, err)
		}
	}
	return nil
}

// validateExpense validates a single expense.
func validateExpense(e *model.Expense) error {
	if e == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if e.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidExpense)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidExpense)
	}
	if e.Vendor == "" {
		return fmt.Errorf("%w: missing vendor", ErrInvalidExpense)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidExpense)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount", ErrInvalidExpense)
	}
	return nil
}

// validateBudget validates a budget before persistence.
func validateBudget(b *model.Budget) error {
	if b == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if b.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidBudget)
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidBudget)
	}
	if b.AlertThreshold != nil && (*b.AlertThreshold < 0 || *b.AlertThreshold > 1) {
		return fmt.Errorf("%w: alert threshold must be within [0,1]", ErrInvalidBudget)
	}
	return nil
}

// validateRecurring validates a recurring expense before persistence.
func validateRecurring(r *model.RecurringExpense) error {
	if r == nil {
		return fmt.Errorf("%w: recurring expense", ErrNilParameter)
	}
	if r.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidRecurring)
	}
	if r.Description == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidRecurring)
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurring, r.Frequency)
	}
	if r.NextDueDate.IsZero() {
		return fmt.Errorf("%w: missing next due date", ErrInvalidRecurring)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRecurring)
	}
	return nil
}

// validateMerchantRule validates a merchant rule before persistence.
func validateMerchantRule(r *model.MerchantRule) error {
	if r == nil {
		return fmt.Errorf("%w: merchant rule", ErrNilParameter)
	}
	if r.UserID == "" {
		return fmt.Errorf("%w: missing user ID", ErrInvalidMerchantRule)
	}
	if strings.TrimSpace(r.MerchantPattern) == "" {
		return fmt.Errorf("%w: missing merchant pattern", ErrInvalidMerchantRule)
	}
	if r.MatchType != "" && !r.MatchType.Valid() {
		return fmt.Errorf("%w: unknown match type %q", ErrInvalidMerchantRule, r.MatchType)
	}
	if r.CategoryID <= 0 {
		return fmt.Errorf("%w: missing category", ErrInvalidMerchantRule)
	}
	return nil
}
