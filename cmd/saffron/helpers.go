package main

import (
	"fmt"

	"github.com/joshsymonds/saffron/internal/config"
	"github.com/joshsymonds/saffron/internal/storage"
	"github.com/spf13/viper"
)

// openStorage opens the SQLite store at the configured path.
func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", dbPath, err)
	}

	return store, nil
}
