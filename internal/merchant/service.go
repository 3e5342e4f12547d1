package merchant

import (
	"context"
	"fmt"
	"time"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/service"
)

// Service matches vendors against a tenant's stored merchant rules and
// records rule usage.
type Service struct {
	store service.Storage
	// afterIncrement runs once the background increment settles; set only
	// by tests, nil in production.
	afterIncrement func()
}

// NewService creates a merchant matching service backed by the given store.
func NewService(store service.Storage) *Service {
	return &Service{store: store}
}

// Match fetches the tenant's rules in match order and returns the first
// match, or nil when none applies. On a match the winning rule's use count
// is incremented in the background; the increment is best-effort and never
// delays or fails the match itself.
func (s *Service) Match(ctx context.Context, userID, vendor string) (*model.MerchantRule, error) {
	rules, err := s.store.GetMerchantRules(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant rules: %w", err)
	}

	matched := FirstMatch(vendor, rules)
	if matched == nil {
		return nil, nil
	}

	go s.recordMatch(matched.ID)

	return matched, nil
}

// recordMatch increments a rule's match count with a bounded retry.
// Failures are logged and swallowed: the caller has already received its
// response and must never observe this side effect.
func (s *Service) recordMatch(ruleID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := common.WithRetry(ctx, func() error {
		return s.store.IncrementMerchantRuleMatchCount(ctx, ruleID)
	}, service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 50 * time.Millisecond,
	})
	if err != nil {
		common.LogError(err, "failed to record merchant rule match", common.Fields{
			"rule_id": ruleID,
		})
	}

	if s.afterIncrement != nil {
		s.afterIncrement()
	}
}
