package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fsms/report-atlas/pkg/models/store"
	"github.com/fsms/report-atlas/pkg/store/sqlite"
)

const defaultListLimit = 50

// Store keeps a log of generated exports.
type Store interface {
	Add(ctx context.Context, records ...store.ExportRecord) error
	List(ctx context.Context, filter store.ExportFilter) ([]store.ExportRecord, error)
}

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

// Add inserts the records. Several records outside a transaction are written
// in one, so a failed insert leaves no partial batch behind.
func (h *historyStore) Add(ctx context.Context, records ...store.ExportRecord) error {
	if len(records) == 0 {
		return nil
	}
	if len(records) > 1 && sqlite.GetTransaction(ctx) == nil {
		return sqlite.InTransaction(ctx, h.db, func(ctx context.Context) error {
			return h.Add(ctx, records...)
		})
	}

	query := `
		INSERT INTO export_history (
			id, report_type, format, file_name, size_bytes, partial, location, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?, ?, ?
		)`

	conn := sqlite.Conn(ctx, h.db)
	for _, r := range records {
		_, err := conn.ExecContext(ctx, query,
			r.ID,
			r.ReportType,
			r.Format,
			r.FileName,
			r.SizeBytes,
			r.Partial,
			nullString(r.Location),
			r.CreatedAt.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert export record: %w", err)
		}
	}
	return nil
}

// List returns the most recent exports first.
func (h *historyStore) List(ctx context.Context, filter store.ExportFilter) ([]store.ExportRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, report_type, format, file_name, size_bytes, partial, location, created_at
		FROM export_history`
	args := []any{}
	if filter.ReportType != "" {
		query += " WHERE report_type = ?"
		args = append(args, filter.ReportType)
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := sqlite.Conn(ctx, h.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query export history: %w", err)
	}
	defer rows.Close()
	return scanExportRows(rows)
}

func scanExportRows(rows *sql.Rows) ([]store.ExportRecord, error) {
	records := make([]store.ExportRecord, 0)
	for rows.Next() {
		var (
			r        store.ExportRecord
			location sql.NullString
			created  time.Time
		)
		if err := rows.Scan(&r.ID, &r.ReportType, &r.Format, &r.FileName, &r.SizeBytes, &r.Partial, &location, &created); err != nil {
			return nil, fmt.Errorf("scan export record: %w", err)
		}
		r.Location = location.String
		r.CreatedAt = created
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate export history: %w", err)
	}
	return records, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
