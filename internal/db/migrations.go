package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS articles (
  id INTEGER PRIMARY KEY,
  instruction TEXT NOT NULL,
  title_en TEXT NOT NULL,
  seo_en TEXT NOT NULL,
  summary_en TEXT NOT NULL,
  body_en TEXT NOT NULL,
  title_id TEXT NOT NULL,
  seo_id TEXT NOT NULL,
  summary_id TEXT NOT NULL,
  body_id TEXT NOT NULL,
  tags TEXT NOT NULL DEFAULT '[]',
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add rendered HTML columns for the markdown bodies
	for _, col := range []string{"body_html_en", "body_html_id"} {
		var count int
		err := db.QueryRow(
			`SELECT COUNT(*) FROM pragma_table_info('articles') WHERE name = ?`, col,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("check %s column: %w", col, err)
		}

		if count == 0 {
			if _, err := db.Exec(fmt.Sprintf(`ALTER TABLE articles ADD COLUMN %s TEXT NOT NULL DEFAULT ''`, col)); err != nil {
				return fmt.Errorf("add %s column: %w", col, err)
			}
		}
	}

	return nil
}
