package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRule(userID, pattern string, matchType model.MatchType, priority int, categoryID int64) *model.MerchantRule {
	return &model.MerchantRule{
		UserID:          userID,
		MerchantPattern: pattern,
		MatchType:       matchType,
		Priority:        priority,
		CategoryID:      categoryID,
		IsActive:        true,
	}
}

func TestCreateAndGetMerchantRules(t *testing.T) {
	db := testutil.SetupTestDB(t, "Shopping", "Subscriptions")
	ctx := context.Background()
	shopping := db.CategoryID("Shopping")
	subscriptions := db.CategoryID("Subscriptions")

	low := newRule("user-1", "amazon", model.MatchContains, 5, shopping)
	high := newRule("user-1", "amazon prime", model.MatchExact, 10, subscriptions)
	other := newRule("user-2", "amazon", model.MatchContains, 99, shopping)

	require.NoError(t, db.Storage.CreateMerchantRule(ctx, low))
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, high))
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, other))

	rules, err := db.Storage.GetMerchantRules(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, rules, 2, "tenant isolation")
	assert.Equal(t, high.ID, rules[0].ID, "highest priority first")
	assert.Equal(t, low.ID, rules[1].ID)
	assert.Equal(t, "Subscriptions", rules[0].CategoryName, "joined category metadata")
}

func TestGetMerchantRules_MatchCountBreaksPriorityTies(t *testing.T) {
	db := testutil.SetupTestDB(t, "Shopping")
	ctx := context.Background()
	shopping := db.CategoryID("Shopping")

	a := newRule("user-1", "alpha", model.MatchContains, 5, shopping)
	b := newRule("user-1", "beta", model.MatchContains, 5, shopping)
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, a))
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, b))

	// Bump b's match count so it sorts ahead of a despite equal priority.
	require.NoError(t, db.Storage.IncrementMerchantRuleMatchCount(ctx, b.ID))
	require.NoError(t, db.Storage.IncrementMerchantRuleMatchCount(ctx, b.ID))

	rules, err := db.Storage.GetMerchantRules(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, b.ID, rules[0].ID)
	assert.Equal(t, 2, rules[0].MatchCount)
}

func TestCreateMerchantRule_UnknownCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	err := db.Storage.CreateMerchantRule(ctx, newRule("user-1", "amazon", model.MatchContains, 0, 12345))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Equal(t, "category 12345 does not exist or is inactive",
		common.UserMessage(err, "invalid request"), "user-facing message survives the error chain")
}

func TestCreateMerchantRule_DefaultsToContains(t *testing.T) {
	db := testutil.SetupTestDB(t, "Shopping")
	ctx := context.Background()

	rule := newRule("user-1", "amazon", "", 0, db.CategoryID("Shopping"))
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, rule))

	rules, err := db.Storage.GetMerchantRules(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, model.MatchContains, rules[0].MatchType)
}

func TestDeleteMerchantRule(t *testing.T) {
	db := testutil.SetupTestDB(t, "Shopping")
	ctx := context.Background()

	rule := newRule("user-1", "amazon", model.MatchContains, 0, db.CategoryID("Shopping"))
	require.NoError(t, db.Storage.CreateMerchantRule(ctx, rule))

	err := db.Storage.DeleteMerchantRule(ctx, "user-2", rule.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound), "tenant isolation on delete")

	require.NoError(t, db.Storage.DeleteMerchantRule(ctx, "user-1", rule.ID))
}

func TestIncrementMerchantRuleMatchCount_MissingRule(t *testing.T) {
	db := testutil.SetupTestDB(t)

	err := db.Storage.IncrementMerchantRuleMatchCount(context.Background(), 777)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
