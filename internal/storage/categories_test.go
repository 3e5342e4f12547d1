package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/joshsymonds/saffron/internal/common"
	"github.com/joshsymonds/saffron/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	cat, err := db.Storage.CreateCategory(ctx, "Groceries", "🛒", "#00ff00", false)
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)
	assert.True(t, cat.IsActive)

	categories, err := db.Storage.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Groceries", categories[0].Name)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t, "Groceries")
	ctx := context.Background()

	_, err := db.Storage.CreateCategory(ctx, "Groceries", "", "", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry))
	assert.Equal(t, `category "Groceries" already exists`,
		common.UserMessage(err, "duplicate entry"))
}

func TestGetCategoryByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := db.Storage.GetCategoryByID(context.Background(), 404)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
