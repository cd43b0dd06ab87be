// Package databasetest opens migrated throwaway sqlite databases for tests.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"grocer/internal/database"

	"github.com/stretchr/testify/require"
)

// New 建立暫存 sqlite 檔案並套用所有 migration
func New(t testing.TB) database.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "grocer.db")
	require.NoError(t, database.RunMigrations("sqlite", dsn))

	db, err := database.Open(context.Background(), "sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
