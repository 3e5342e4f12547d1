package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
)

// CreateMerchantRule persists a new merchant rule. The rule's category must
// exist and be active.
func (s *SQLiteStorage) CreateMerchantRule(ctx context.Context, rule *model.MerchantRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateMerchantRule(rule); err != nil {
		return err
	}
	if rule.MatchType == "" {
		rule.MatchType = model.MatchContains
	}

	var categoryCount int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM categories WHERE id = ? AND is_active = 1",
		rule.CategoryID).Scan(&categoryCount)
	if err != nil {
		return fmt.Errorf("failed to verify category: %w", err)
	}
	if categoryCount == 0 {
		return common.NewValidationError(
			fmt.Sprintf("category %d does not exist or is inactive", rule.CategoryID))
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO merchant_rules (
			user_id, merchant_pattern, match_type, priority,
			category_id, vendor_display_name, is_active
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rule.UserID, rule.MerchantPattern, string(rule.MatchType),
		rule.Priority, rule.CategoryID, rule.VendorDisplayName, rule.IsActive)
	if err != nil {
		return fmt.Errorf("failed to create merchant rule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get merchant rule ID: %w", err)
	}

	rule.ID = id
	rule.CreatedAt = time.Now()
	rule.UpdatedAt = time.Now()
	return nil
}

// GetMerchantRules returns a tenant's active rules with joined category
// metadata, in match order: priority desc, match_count desc, id asc.
func (s *SQLiteStorage) GetMerchantRules(ctx context.Context, userID string) ([]model.MerchantRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.merchant_pattern, r.match_type, r.priority,
			r.match_count, r.category_id, r.vendor_display_name, r.is_active,
			r.created_at, r.updated_at,
			COALESCE(c.name, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''),
			COALESCE(c.is_business, 0)
		FROM merchant_rules r
		LEFT JOIN categories c ON c.id = r.category_id
		WHERE r.user_id = ? AND r.is_active = 1
		ORDER BY r.priority DESC, r.match_count DESC, r.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query merchant rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.MerchantRule
	for rows.Next() {
		var r model.MerchantRule
		var matchType string

		if err := rows.Scan(&r.ID, &r.UserID, &r.MerchantPattern, &matchType,
			&r.Priority, &r.MatchCount, &r.CategoryID, &r.VendorDisplayName,
			&r.IsActive, &r.CreatedAt, &r.UpdatedAt,
			&r.CategoryName, &r.CategoryIcon, &r.CategoryColor, &r.IsBusiness); err != nil {
			return nil, fmt.Errorf("failed to scan merchant rule: %w", err)
		}
		r.MatchType = model.MatchType(matchType)

		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate merchant rules: %w", err)
	}

	return rules, nil
}

// DeleteMerchantRule removes one of the tenant's rules.
func (s *SQLiteStorage) DeleteMerchantRule(ctx context.Context, userID string, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM merchant_rules WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete merchant rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("merchant rule %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// IncrementMerchantRuleMatchCount bumps a rule's match count after a
// successful match.
func (s *SQLiteStorage) IncrementMerchantRuleMatchCount(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE merchant_rules
		SET match_count = match_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to increment match count: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("merchant rule %d: %w", id, common.ErrNotFound)
	}
	return nil
}
