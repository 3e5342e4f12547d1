package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/mattn/go-sqlite3"
)

// GetCategories returns all active categories ordered by name.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, is_business, is_active
		FROM categories
		WHERE is_active = 1
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.IsBusiness, &c.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// GetCategoryByID retrieves a single category.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var c model.Category
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, icon, color, is_business, is_active
		FROM categories
		WHERE id = ?
	`, id).Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.IsBusiness, &c.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

// CreateCategory creates a new active category.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, icon, color string, isBusiness bool) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, icon, color, is_business, is_active)
		VALUES (?, ?, ?, ?, 1)
	`, name, icon, color, isBusiness)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, common.NewUserError(
				fmt.Sprintf("category %q already exists", name), common.ErrDuplicateEntry)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	return &model.Category{
		ID:         id,
		Name:       name,
		Icon:       icon,
		Color:      color,
		IsBusiness: isBusiness,
		IsActive:   true,
	}, nil
}
