package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joshsymonds/saffron/internal/model"
)

// CreateBudget persists a new budget.
func (s *SQLiteStorage) CreateBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}
	if budget.Period == "" {
		budget.Period = "monthly"
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (user_id, category_id, amount, period, alert_threshold, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, budget.UserID, budget.CategoryID, budget.Amount.String(),
		budget.Period, budget.AlertThreshold, budget.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get budget ID: %w", err)
	}

	budget.ID = id
	budget.CreatedAt = time.Now()
	return nil
}

// GetActiveBudgets returns a tenant's active budgets with joined category
// names.
func (s *SQLiteStorage) GetActiveBudgets(ctx context.Context, userID string) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.user_id, b.category_id, COALESCE(c.name, ''),
			b.amount, b.period, b.alert_threshold, b.is_active, b.created_at
		FROM budgets b
		LEFT JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = ? AND b.is_active = 1
		ORDER BY b.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		var amountStr string
		var categoryID sql.NullInt64
		var threshold sql.NullFloat64

		if err := rows.Scan(&b.ID, &b.UserID, &categoryID, &b.CategoryName,
			&amountStr, &b.Period, &threshold, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}

		amount, err := scanDecimal(amountStr)
		if err != nil {
			return nil, err
		}
		b.Amount = amount

		if categoryID.Valid {
			b.CategoryID = &categoryID.Int64
		}
		if threshold.Valid {
			b.AlertThreshold = &threshold.Float64
		}

		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}

	return budgets, nil
}
