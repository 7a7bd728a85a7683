package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const ExportHistorySchema = `
	CREATE TABLE IF NOT EXISTS export_history (
		id TEXT NOT NULL PRIMARY KEY,
		report_type TEXT NOT NULL,
		format TEXT NOT NULL,
		file_name TEXT NOT NULL,
		size_bytes INTEGER NOT NULL DEFAULT 0,
		partial INTEGER NOT NULL DEFAULT 0,
		location TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

const ExportHistoryIndex = `
	CREATE INDEX IF NOT EXISTS idx_export_history_created_at ON export_history (created_at);
`

var bootQueries = []string{
	ExportHistorySchema,
	ExportHistoryIndex,
}

type Settings struct {
	DbPath string
}

// NewDB opens the sqlite database at settings.DbPath and creates the schema.
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", settings.DbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, query := range bootQueries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("boot query: %w", err)
		}
	}
	return nil
}
