// Package merchant provides vendor-to-category rule matching and vendor
// string normalization.
package merchant

import (
	"strings"

	"github.com/joshsymonds/saffron/internal/model"
)

// FirstMatch returns the first rule whose pattern matches the vendor.
// Rules must already be in match order (priority desc, match_count desc,
// id asc); the store guarantees this. A nil result means no rule applies,
// which is not an error.
func FirstMatch(vendor string, rules []model.MerchantRule) *model.MerchantRule {
	normalized := strings.ToLower(strings.TrimSpace(vendor))
	if normalized == "" {
		return nil
	}

	for i := range rules {
		rule := &rules[i]
		if !rule.IsActive {
			continue
		}
		if matchesPattern(normalized, rule.MerchantPattern, rule.MatchType) {
			return rule
		}
	}

	return nil
}

// matchesPattern compares a normalized vendor against one rule pattern.
// Comparison is case-insensitive and whitespace-trimmed; an unknown match
// type falls back to substring containment.
func matchesPattern(vendor, pattern string, matchType model.MatchType) bool {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" {
		return false
	}

	switch matchType {
	case model.MatchExact:
		return vendor == p
	case model.MatchStartsWith:
		return strings.HasPrefix(vendor, p)
	default:
		return strings.Contains(vendor, p)
	}
}
