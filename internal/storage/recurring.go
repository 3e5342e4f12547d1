package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/joshsymonds/saffron/internal/model"
)

// CreateRecurringExpense persists a new recurring expense.
func (s *SQLiteStorage) CreateRecurringExpense(ctx context.Context, recurring *model.RecurringExpense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecurring(recurring); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO recurring_expenses (user_id, description, amount, frequency, next_due_date, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, recurring.UserID, recurring.Description, recurring.Amount.String(),
		string(recurring.Frequency), recurring.NextDueDate, recurring.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create recurring expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get recurring expense ID: %w", err)
	}

	recurring.ID = id
	recurring.CreatedAt = time.Now()
	return nil
}

// GetActiveRecurringExpenses returns a tenant's active recurring expenses
// ordered by next due date.
func (s *SQLiteStorage) GetActiveRecurringExpenses(ctx context.Context, userID string) ([]model.RecurringExpense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, description, amount, frequency, next_due_date, is_active, created_at
		FROM recurring_expenses
		WHERE user_id = ? AND is_active = 1
		ORDER BY next_due_date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recurring []model.RecurringExpense
	for rows.Next() {
		var r model.RecurringExpense
		var amountStr, frequency string

		if err := rows.Scan(&r.ID, &r.UserID, &r.Description, &amountStr,
			&frequency, &r.NextDueDate, &r.IsActive, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recurring expense: %w", err)
		}

		amount, err := scanDecimal(amountStr)
		if err != nil {
			return nil, err
		}
		r.Amount = amount
		r.Frequency = model.Frequency(frequency)

		recurring = append(recurring, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recurring expenses: %w", err)
	}

	return recurring, nil
}
