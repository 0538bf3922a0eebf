package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// OpenTest creates a migrated throwaway database in t.TempDir.
func OpenTest(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")

	mgr, err := NewMigrationManager(path)
	if err != nil {
		t.Fatalf("failed to create migration manager: %v", err)
	}
	if err := mgr.Up(); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("failed to close migration manager: %v", err)
	}

	db, err := Open(DefaultConfig(path))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}
