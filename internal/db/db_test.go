package db_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/require"

	"penulis/internal/db"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	// Verify table exists (basic check)
	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='articles'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "articles", name)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()
}

func TestMigrate_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	defer database.Close()

	// Running migrations again must not fail
	require.NoError(t, db.Migrate(database))

	var count int
	err = database.QueryRow(
		`SELECT COUNT(*) FROM pragma_table_info('articles') WHERE name = 'body_html_id'`,
	).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMigrate_ClosedDB(t *testing.T) {
	database, err := sql.Open("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	err = db.Migrate(database)
	require.Error(t, err)
}
