package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"penulis/internal/db"
	"penulis/internal/snowflake"
)

// NewTestDB opens a migrated sqlite database in a temp dir and registers
// cleanup. It also initializes the snowflake node used by repositories.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if err := snowflake.Init(1); err != nil {
		t.Fatalf("init snowflake: %v", err)
	}

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	return database
}
