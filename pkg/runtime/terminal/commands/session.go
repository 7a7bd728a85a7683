package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/models/store"
	"github.com/fsms/report-atlas/pkg/services/dashboard"
	"github.com/fsms/report-atlas/pkg/services/report"
)

const commandTimeout = 120 * time.Second

type Generator interface {
	Generate(ctx context.Context, name, format string, period *domain.DateRange) (*report.Result, error)
	ExportDataset(ctx context.Context, name, format string) (*report.Result, error)
}

type Dashboard interface {
	LoadAll(ctx context.Context, r *domain.DateRange) (dashboard.State, error)
	LoadTab(ctx context.Context, tab string, r *domain.DateRange) (dashboard.State, error)
}

type History interface {
	List(ctx context.Context, filter store.ExportFilter) ([]store.ExportRecord, error)
}

// Session is an opened report pipeline. Close may be nil.
type Session struct {
	Generator Generator
	Dashboard Dashboard
	History   History
	Currency  string
	Close     func() error
}

func (s *Session) close() {
	if s.Close != nil {
		_ = s.Close()
	}
}

// Opener builds a session for a single command run.
type Opener func(ctx context.Context) (*Session, error)

func parsePeriod(start, end string) (*domain.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("--start and --end must be given together")
	}
	period, err := domain.ParseDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// saveResult writes the artifact into dir and reports where it went.
func saveResult(w io.Writer, dir string, res *report.Result) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, res.Artifact.Name)
	if err := os.WriteFile(path, res.Artifact.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(w, "Saved %s (%d bytes)\n", path, len(res.Artifact.Data))
	if res.Artifact.Partial {
		_, _ = fmt.Fprintln(w, "Some periods had no data and were exported as zero.")
	}
	if res.Location != "" {
		_, _ = fmt.Fprintf(w, "Stored at %s\n", res.Location)
	}
	return nil
}
