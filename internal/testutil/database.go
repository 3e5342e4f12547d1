// Package testutil provides shared test utilities for the saffron project.
package testutil

import (
	"context"
	"testing"

	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/storage"
)

// TestDB wraps an in-memory store with its seeded categories.
type TestDB struct {
	Storage    *storage.SQLiteStorage
	Categories map[string]model.Category
	t          *testing.T
}

// SetupTestDB creates a migrated in-memory SQLite store seeded with the
// named categories. Cleanup is registered automatically.
func SetupTestDB(t *testing.T, categoryNames ...string) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	db := &TestDB{
		Storage:    store,
		Categories: make(map[string]model.Category, len(categoryNames)),
		t:          t,
	}

	for _, name := range categoryNames {
		cat, err := store.CreateCategory(ctx, name, "", "", false)
		if err != nil {
			t.Fatalf("failed to seed category %q: %v", name, err)
		}
		db.Categories[name] = *cat
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return db
}

// CategoryID returns the ID of a seeded category.
func (db *TestDB) CategoryID(name string) int64 {
	db.t.Helper()

	cat, ok := db.Categories[name]
	if !ok {
		db.t.Fatalf("category %q was not seeded", name)
	}
	return cat.ID
}
