package report

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/aggregator"
	"github.com/rs/zerolog"
)

// Dataset names accepted by ExportDataset.
const (
	DatasetDailySales        = "daily-sales"
	DatasetPumpPerformance   = "pump-performance"
	DatasetInventoryMovement = "inventory-movement"
	DatasetMonthlyTrends     = "monthly-trends"
	DatasetYearlyAnalysis    = "yearly-analysis"
)

var datasetFiles = map[string]string{
	DatasetDailySales:        "daily_sales_report",
	DatasetPumpPerformance:   "pump_performance",
	DatasetInventoryMovement: "inventory_movement",
	DatasetMonthlyTrends:     "monthly_trends",
	DatasetYearlyAnalysis:    "yearly_analysis",
}

type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset: %q", e.Name)
}

func Datasets() []string {
	names := make([]string, 0, len(datasetFiles))
	for name := range datasetFiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExportDataset writes one of the raw dashboard tables to csv or excel.
func (g *Generator) ExportDataset(ctx context.Context, name, format string) (*Result, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	file, ok := datasetFiles[name]
	if !ok {
		return nil, &UnknownDatasetError{Name: name}
	}
	f, err := domain.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == domain.FormatPDF {
		return nil, &domain.UnsupportedFormatError{Format: format}
	}

	logger := zerolog.Ctx(ctx).With().Str("dataset", name).Str("format", string(f)).Logger()
	ctx = logger.WithContext(ctx)

	records, missing, err := g.dataset(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		logger.Warn().Strs("missing_periods", missing).Msg("dataset has missing periods")
	}

	a, err := g.exporter.Tabular(records, file, f)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", name, err)
	}
	a.ReportType = name
	a.Partial = len(missing) > 0
	return g.keep(ctx, a)
}

func (g *Generator) dataset(ctx context.Context, name string) ([]domain.Record, []string, error) {
	now := g.fetcher.Now()
	est := g.fetcher.Estimates()

	switch name {
	case DatasetDailySales:
		w := g.fetcher.FetchDailyWindow(ctx, g.opts.DailyWindow)
		return domain.Records(w.Records), w.MissingPeriods(), nil

	case DatasetPumpPerformance:
		w := g.fetcher.FetchDailyWindow(ctx, g.opts.DailyWindow)
		return domain.Records(aggregator.AggregatePumps(w.Records, est)), w.MissingPeriods(), nil

	case DatasetInventoryMovement:
		lines, err := g.fetcher.FetchInventoryReport(ctx)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("inventory fetch failed")
		}
		return domain.Records(lines), nil, nil

	case DatasetMonthlyTrends:
		w := g.fetcher.FetchMonthlyWindow(ctx, g.opts.MonthlyWindow)
		return domain.Records(aggregator.MonthlyTrends(w.Records, est)), w.MissingPeriods(), nil

	case DatasetYearlyAnalysis:
		years := aggregator.TrailingYears(now, g.opts.YearlyWindow)
		w := g.fetcher.FetchMonths(ctx, aggregator.MonthsOfYears(years))
		return domain.Records(aggregator.YearlyBreakdown(years, w.Records, est)), w.MissingPeriods(), nil
	}
	return nil, nil, &UnknownDatasetError{Name: name}
}
