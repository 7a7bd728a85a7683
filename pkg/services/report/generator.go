package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsms/report-atlas/pkg/adapters"
	"github.com/fsms/report-atlas/pkg/export"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/fetcher"
	"github.com/fsms/report-atlas/pkg/store/artifact"
	"github.com/fsms/report-atlas/pkg/store/history"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Options struct {
	DailyWindow   int
	MonthlyWindow int
	YearlyWindow  int
	// RangeDays is the default look-back of the financial summary when no
	// period is given.
	RangeDays int
}

func DefaultOptions() Options {
	return Options{DailyWindow: 7, MonthlyWindow: 12, YearlyWindow: 2, RangeDays: 7}
}

// Result is a generated artifact together with where it was kept.
type Result struct {
	ID       string
	Artifact *domain.Artifact
	Location string
}

// Generator loads fresh data for a report, exports it and records the export.
type Generator struct {
	fetcher  *fetcher.Fetcher
	exporter *export.Exporter
	sink     artifact.Sink
	history  history.Store
	opts     Options
	newID    func() string
}

func NewGenerator(
	f *fetcher.Fetcher,
	exporter *export.Exporter,
	sink artifact.Sink,
	historyStore history.Store,
	opts Options,
) *Generator {
	defaults := DefaultOptions()
	if opts.DailyWindow <= 0 {
		opts.DailyWindow = defaults.DailyWindow
	}
	if opts.MonthlyWindow <= 0 {
		opts.MonthlyWindow = defaults.MonthlyWindow
	}
	if opts.YearlyWindow <= 0 {
		opts.YearlyWindow = defaults.YearlyWindow
	}
	if opts.RangeDays <= 0 {
		opts.RangeDays = defaults.RangeDays
	}
	if sink == nil {
		sink = artifact.NopSink{}
	}
	return &Generator{
		fetcher:  f,
		exporter: exporter,
		sink:     sink,
		history:  historyStore,
		opts:     opts,
		newID:    uuid.NewString,
	}
}

// Period returns the requested range, or the default look-back ending today.
func (g *Generator) Period(period *domain.DateRange) domain.DateRange {
	if period != nil {
		return *period
	}
	return domain.LastDays(g.fetcher.Now(), g.opts.RangeDays)
}

// Generate builds the named report in the given format. Report names accept
// the dashboard aliases, e.g. "Daily Sales" or "P&L Statement".
func (g *Generator) Generate(ctx context.Context, name, format string, period *domain.DateRange) (*Result, error) {
	reportType, err := domain.ParseReportType(name)
	if err != nil {
		return nil, err
	}
	f, err := domain.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	r := g.Period(period)
	if err := r.Validate(); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().
		Str("report_type", reportType).
		Str("format", string(f)).
		Str("period", r.String()).
		Int("days", r.Days()).
		Logger()
	ctx = logger.WithContext(ctx)

	data, partial, err := g.load(ctx, reportType, r)
	if err != nil {
		return nil, err
	}

	a, err := g.exporter.ExportFormat(reportType, f, data, &r)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", reportType, err)
	}
	a.Partial = partial
	return g.keep(ctx, a)
}

func (g *Generator) load(ctx context.Context, reportType string, period domain.DateRange) (any, bool, error) {
	logger := zerolog.Ctx(ctx)

	switch reportType {
	case domain.ReportDailySales:
		w := g.fetcher.FetchDailyWindow(ctx, g.opts.DailyWindow)
		if len(w.Records) == 0 {
			return nil, false, domain.ErrEmptyData
		}
		if w.Partial() {
			logger.Warn().Strs("missing_periods", w.MissingPeriods()).Msg("daily sales report has missing days")
		}
		return w.Records, w.Partial(), nil

	case domain.ReportInventory:
		lines, err := g.fetcher.FetchInventoryReport(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("inventory fetch failed")
		}
		if len(lines) == 0 {
			return nil, false, domain.ErrEmptyData
		}
		return lines, false, nil

	case domain.ReportProfitLoss:
		summary, err := g.fetcher.FetchFinancialSummary(ctx, period)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDateRange) {
				return nil, false, err
			}
			logger.Warn().Err(err).Msg("financial summary fetch failed")
			return nil, false, domain.ErrEmptyData
		}
		return &summary, false, nil
	}
	return nil, false, &domain.UnknownReportTypeError{Name: reportType}
}

// keep hands the artifact to the sink and logs it in the export history. A
// history failure does not fail the export.
func (g *Generator) keep(ctx context.Context, a *domain.Artifact) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	location, err := g.sink.Put(ctx, a)
	if err != nil {
		logger.Error().Err(err).Str("file", a.Name).Msg("failed to store artifact")
		return nil, fmt.Errorf("store artifact: %w", err)
	}

	res := &Result{ID: g.newID(), Artifact: a, Location: location}
	if g.history != nil {
		record := adapters.MapArtifactDomainToStore(res.ID, a, location)
		if err := g.history.Add(ctx, record); err != nil {
			logger.Error().Err(err).Str("file", a.Name).Msg("failed to record export history")
		}
	}

	logger.Info().
		Str("file", a.Name).
		Int("size_bytes", len(a.Data)).
		Bool("partial", a.Partial).
		Msg("report exported")
	return res, nil
}
