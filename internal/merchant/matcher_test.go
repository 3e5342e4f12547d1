package merchant

import (
	"sort"
	"testing"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(id int64, pattern string, matchType model.MatchType, priority, matchCount int) model.MerchantRule {
	return model.MerchantRule{
		ID:              id,
		UserID:          "user-1",
		MerchantPattern: pattern,
		MatchType:       matchType,
		Priority:        priority,
		MatchCount:      matchCount,
		CategoryID:      1,
		IsActive:        true,
	}
}

// sortRules applies the store's match order: priority desc, match_count
// desc, id asc.
func sortRules(rules []model.MerchantRule) []model.MerchantRule {
	sorted := make([]model.MerchantRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.MatchCount != b.MatchCount {
			return a.MatchCount > b.MatchCount
		}
		return a.ID < b.ID
	})
	return sorted
}

func TestFirstMatch(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		rules  []model.MerchantRule
		wantID int64
		none   bool
	}{
		{
			name:   "exact match case insensitive",
			vendor: "STARBUCKS",
			rules:  []model.MerchantRule{rule(1, "Starbucks", model.MatchExact, 0, 0)},
			wantID: 1,
		},
		{
			name:   "exact requires full equality",
			vendor: "Starbucks Reserve",
			rules:  []model.MerchantRule{rule(1, "Starbucks", model.MatchExact, 0, 0)},
			none:   true,
		},
		{
			name:   "starts_with",
			vendor: "Amazon Marketplace 4X7",
			rules:  []model.MerchantRule{rule(1, "amazon", model.MatchStartsWith, 0, 0)},
			wantID: 1,
		},
		{
			name:   "contains is the default",
			vendor: "SQ *BLUE BOTTLE COFFEE",
			rules:  []model.MerchantRule{rule(1, "blue bottle", "", 0, 0)},
			wantID: 1,
		},
		{
			name:   "leading and trailing whitespace trimmed",
			vendor: "  netflix.com  ",
			rules:  []model.MerchantRule{rule(1, " netflix.com ", model.MatchExact, 0, 0)},
			wantID: 1,
		},
		{
			name:   "higher priority exact beats lower priority contains",
			vendor: "AMAZON PRIME",
			rules: sortRules([]model.MerchantRule{
				rule(1, "amazon", model.MatchContains, 5, 0),
				rule(2, "amazon prime", model.MatchExact, 10, 0),
			}),
			wantID: 2,
		},
		{
			name:   "priority tie falls through to match count",
			vendor: "amazon prime video",
			rules: sortRules([]model.MerchantRule{
				rule(1, "amazon", model.MatchContains, 5, 3),
				rule(2, "prime", model.MatchContains, 5, 9),
			}),
			wantID: 2,
		},
		{
			name:   "full tie falls through to input order",
			vendor: "amazon prime video",
			rules: sortRules([]model.MerchantRule{
				rule(2, "prime", model.MatchContains, 5, 3),
				rule(1, "amazon", model.MatchContains, 5, 3),
			}),
			wantID: 1,
		},
		{
			name:   "inactive rules skipped",
			vendor: "Starbucks",
			rules: []model.MerchantRule{
				{ID: 1, MerchantPattern: "starbucks", MatchType: model.MatchExact, IsActive: false},
				rule(2, "starbucks", model.MatchExact, 0, 0),
			},
			wantID: 2,
		},
		{
			name:   "empty rule list",
			vendor: "anything",
			none:   true,
		},
		{
			name:   "no rule matches",
			vendor: "Completely Unknown Vendor",
			rules:  []model.MerchantRule{rule(1, "starbucks", model.MatchContains, 0, 0)},
			none:   true,
		},
		{
			name:   "empty vendor never matches",
			vendor: "   ",
			rules:  []model.MerchantRule{rule(1, "", model.MatchContains, 0, 0)},
			none:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstMatch(tt.vendor, tt.rules)
			if tt.none {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}
