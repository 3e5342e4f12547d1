package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/service"
	"github.com/shopspring/decimal"
)

// scanDecimal parses a TEXT amount column into an exact decimal.
func scanDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("corrupt amount %q: %w", s, err)
	}
	return d, nil
}

// SaveExpenses persists a batch of expenses.
func (s *SQLiteStorage) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpenses(expenses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (id, user_id, vendor, description, amount, date, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range expenses {
		e := &expenses[i]
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.UserID, e.Vendor, e.Description,
			e.Amount.String(), e.Date, e.CategoryID,
		); err != nil {
			return fmt.Errorf("failed to insert expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expenses: %w", err)
	}
	return nil
}

// GetExpensesByDateRange returns a tenant's expenses with joined category
// metadata for an inclusive date range, newest first.
func (s *SQLiteStorage) GetExpensesByDateRange(ctx context.Context, userID string, start, end time.Time) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	query := `
		SELECT e.id, e.user_id, e.vendor, e.description, e.amount, e.date,
			e.category_id, COALESCE(c.name, ''), COALESCE(c.icon, ''), e.created_at
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = ? AND e.date >= ? AND e.date < ?
		ORDER BY e.date DESC, e.id
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetExpenses returns a tenant's expenses with optional filtering.
func (s *SQLiteStorage) GetExpenses(ctx context.Context, userID string, filter service.ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	var conditions []string
	args := []any{userID}
	conditions = append(conditions, "e.user_id = ?")

	if filter.StartDate != nil {
		conditions = append(conditions, "e.date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "e.date < ?")
		args = append(args, filter.EndDate.AddDate(0, 0, 1))
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "e.category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.user_id, e.vendor, e.description, e.amount, e.date,
			e.category_id, COALESCE(c.name, ''), COALESCE(c.icon, ''), e.created_at
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE %s
		ORDER BY e.date DESC, e.id
	`, strings.Join(conditions, " AND "))

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetSpendingHistory summarizes a tenant's spend strictly before the cutoff:
// exact decimal total plus the number of distinct days with activity.
func (s *SQLiteStorage) GetSpendingHistory(ctx context.Context, userID string, before time.Time) (*service.SpendingHistory, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT amount, date FROM expenses
		WHERE user_id = ? AND date < ?
	`, userID, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query spending history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	history := &service.SpendingHistory{Total: decimal.Zero}
	days := make(map[string]struct{})

	for rows.Next() {
		var amountStr string
		var date time.Time
		if err := rows.Scan(&amountStr, &date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		amount, err := scanDecimal(amountStr)
		if err != nil {
			return nil, err
		}
		history.Total = history.Total.Add(amount)
		days[date.Format("2006-01-02")] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spending history: %w", err)
	}

	history.ActiveDays = len(days)
	return history, nil
}

// DeleteExpense removes one of the tenant's expenses.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, userID, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense

	for rows.Next() {
		var e model.Expense
		var amountStr string
		var categoryID sql.NullInt64

		if err := rows.Scan(&e.ID, &e.UserID, &e.Vendor, &e.Description,
			&amountStr, &e.Date, &categoryID, &e.CategoryName, &e.CategoryIcon,
			&e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		amount, err := scanDecimal(amountStr)
		if err != nil {
			return nil, err
		}
		e.Amount = amount

		if categoryID.Valid {
			e.CategoryID = &categoryID.Int64
		}

		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
