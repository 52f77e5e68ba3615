// Package testdb opens a throwaway file-backed store for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/minjaecho/teacherdesk/internal/db"
)

// Open creates a fresh store in a temp directory, schema applied, and wires
// cleanup into the test lifecycle.
func Open(t *testing.T) *db.SQLiteDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := db.NewSQLiteDB(path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
