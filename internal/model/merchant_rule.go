package model

import "time"

// MatchType represents how a merchant rule's pattern is compared against a
// vendor string.
type MatchType string

// Merchant rule match types.
const (
	MatchExact      MatchType = "exact"
	MatchStartsWith MatchType = "starts_with"
	MatchContains   MatchType = "contains"
)

// Valid reports whether the match type is one of the known comparisons.
func (m MatchType) Valid() bool {
	switch m {
	case MatchExact, MatchStartsWith, MatchContains:
		return true
	}
	return false
}

// MerchantRule maps a vendor pattern to a category for one tenant.
// Rules are evaluated in (priority desc, match_count desc, id asc) order;
// the first rule whose pattern matches wins.
type MerchantRule struct {
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	UserID            string    `json:"user_id"`
	MerchantPattern   string    `json:"merchant_pattern"`
	MatchType         MatchType `json:"match_type"`
	VendorDisplayName string    `json:"vendor_display_name,omitempty"`
	CategoryName      string    `json:"category_name"`
	CategoryIcon      string    `json:"category_icon,omitempty"`
	CategoryColor     string    `json:"category_color,omitempty"`
	ID                int64     `json:"id"`
	CategoryID        int64     `json:"category_id"`
	Priority          int       `json:"priority"`
	MatchCount        int       `json:"match_count"`
	IsBusiness        bool      `json:"is_business"`
	IsActive          bool      `json:"is_active"`
}
