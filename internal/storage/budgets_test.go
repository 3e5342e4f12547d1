package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetActiveBudgets(t *testing.T) {
	db := testutil.SetupTestDB(t, "Groceries")
	ctx := context.Background()
	groceries := db.CategoryID("Groceries")
	threshold := 0.8

	budgets := []*model.Budget{
		{
			UserID:         "user-1",
			CategoryID:     &groceries,
			Amount:         decimal.RequireFromString("500"),
			Period:         "monthly",
			AlertThreshold: &threshold,
			IsActive:       true,
		},
		{
			UserID:   "user-1",
			Amount:   decimal.RequireFromString("2000"),
			IsActive: true, // overall budget, no category, no threshold
		},
		{
			UserID:   "user-1",
			Amount:   decimal.RequireFromString("100"),
			IsActive: false,
		},
		{
			UserID:   "user-2",
			Amount:   decimal.RequireFromString("999"),
			IsActive: true,
		},
	}
	for _, b := range budgets {
		require.NoError(t, db.Storage.CreateBudget(ctx, b))
	}

	got, err := db.Storage.GetActiveBudgets(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, got, 2, "inactive and foreign budgets excluded")

	assert.Equal(t, "Groceries", got[0].CategoryName)
	require.NotNil(t, got[0].AlertThreshold)
	assert.InDelta(t, 0.8, *got[0].AlertThreshold, 0.0001)
	assert.Equal(t, "monthly", got[0].Period)

	assert.Nil(t, got[1].CategoryID)
	assert.Nil(t, got[1].AlertThreshold, "missing threshold round-trips as nil")
	assert.Equal(t, "monthly", got[1].Period, "period defaults to monthly")
}

func TestCreateBudget_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	badThreshold := 1.5

	tests := []struct {
		name   string
		budget *model.Budget
	}{
		{name: "nil budget", budget: nil},
		{name: "missing user", budget: &model.Budget{Amount: decimal.RequireFromString("10")}},
		{name: "zero amount", budget: &model.Budget{UserID: "user-1"}},
		{
			name: "threshold out of range",
			budget: &model.Budget{
				UserID:         "user-1",
				Amount:         decimal.RequireFromString("10"),
				AlertThreshold: &badThreshold,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, db.Storage.CreateBudget(ctx, tt.budget))
		})
	}
}

func TestCreateAndGetActiveRecurringExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	due := func(day int) time.Time {
		return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
	}

	items := []*model.RecurringExpense{
		{UserID: "user-1", Description: "rent", Amount: decimal.RequireFromString("1200"), Frequency: model.FrequencyMonthly, NextDueDate: due(28), IsActive: true},
		{UserID: "user-1", Description: "gym", Amount: decimal.RequireFromString("45"), Frequency: model.FrequencyMonthly, NextDueDate: due(3), IsActive: true},
		{UserID: "user-1", Description: "old sub", Amount: decimal.RequireFromString("5"), Frequency: model.FrequencyMonthly, NextDueDate: due(1), IsActive: false},
	}
	for _, r := range items {
		require.NoError(t, db.Storage.CreateRecurringExpense(ctx, r))
	}

	got, err := db.Storage.GetActiveRecurringExpenses(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "gym", got[0].Description, "ordered by next due date")
	assert.Equal(t, "rent", got[1].Description)
	assert.True(t, got[1].Amount.Equal(decimal.RequireFromString("1200")))
}

func TestCreateRecurringExpense_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	bad := &model.RecurringExpense{
		UserID:      "user-1",
		Description: "mystery",
		Amount:      decimal.RequireFromString("10"),
		Frequency:   "sometimes",
		NextDueDate: time.Now(),
	}
	assert.Error(t, db.Storage.CreateRecurringExpense(ctx, bad))
}
