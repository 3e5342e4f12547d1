package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget represents a per-category (or overall, when CategoryID is nil)
// spending limit for one tenant.
type Budget struct {
	CreatedAt      time.Time       `json:"created_at"`
	CategoryID     *int64          `json:"category_id,omitempty"`
	AlertThreshold *float64        `json:"alert_threshold,omitempty"`
	UserID         string          `json:"user_id"`
	CategoryName   string          `json:"category_name,omitempty"`
	Period         string          `json:"period"`
	Amount         decimal.Decimal `json:"amount"`
	ID             int64           `json:"id"`
	IsActive       bool            `json:"is_active"`
}
