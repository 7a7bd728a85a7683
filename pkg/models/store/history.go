package store

import "time"

// ExportRecord is a row of the export_history table.
type ExportRecord struct {
	ID         string
	ReportType string
	Format     string
	FileName   string
	SizeBytes  int64
	Partial    bool
	Location   string
	CreatedAt  time.Time
}

type ExportFilter struct {
	ReportType string
	Limit      int
}
