package fetcher

import (
	"context"
	"time"

	"github.com/fsms/report-atlas/pkg/adapters"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/aggregator"
	"github.com/fsms/report-atlas/pkg/store/client"
	"github.com/rs/zerolog"
)

const defaultMaxConcurrency = 8

type Options struct {
	Estimates      domain.Estimates
	MaxConcurrency int
	Now            func() time.Time
}

// Fetcher turns report endpoint responses into domain records. Window fetches
// never fail: failed periods become zero-valued placeholders.
type Fetcher struct {
	client client.ReportsClient
	opts   Options
}

func New(c client.ReportsClient, opts Options) *Fetcher {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = defaultMaxConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Fetcher{client: c, opts: opts}
}

func (f *Fetcher) Now() time.Time {
	return f.opts.Now()
}

func (f *Fetcher) Estimates() domain.Estimates {
	return f.opts.Estimates
}

func (f *Fetcher) FetchDailySales(ctx context.Context, date time.Time) (domain.DailySalesRecord, error) {
	payload, err := f.client.GetDailySales(ctx, date)
	if err != nil {
		return domain.ZeroDailySales(date), err
	}
	return adapters.MapDailySalesApiToDomain(date, payload), nil
}

func (f *Fetcher) FetchMonthlySales(ctx context.Context, year int, month time.Month) (domain.MonthlySalesRecord, error) {
	period := domain.MonthPeriod{Year: year, Month: month}
	payload, err := f.client.GetMonthlySales(ctx, year, month)
	if err != nil {
		return domain.ZeroMonthlySales(period), err
	}
	return adapters.MapMonthlySalesApiToDomain(period, payload), nil
}

func (f *Fetcher) FetchInventoryReport(ctx context.Context) ([]domain.InventoryLineRecord, error) {
	payload, err := f.client.GetInventory(ctx)
	if err != nil {
		return []domain.InventoryLineRecord{}, err
	}
	return adapters.MapInventoryApiToDomain(payload, f.opts.Estimates.DefaultCostPerLiter), nil
}

func (f *Fetcher) FetchFinancialSummary(ctx context.Context, period domain.DateRange) (domain.FinancialSummaryRecord, error) {
	if err := period.Validate(); err != nil {
		return domain.EmptyFinancialSummary(), err
	}
	payload, err := f.client.GetFinancialSummary(ctx, period)
	if err != nil {
		return domain.EmptyFinancialSummary(), err
	}
	return adapters.MapFinancialSummaryApiToDomain(payload, f.opts.Estimates), nil
}

// FetchDailyWindow fetches the last count days, today included, oldest first.
func (f *Fetcher) FetchDailyWindow(ctx context.Context, count int) Window[domain.DailySalesRecord] {
	return f.FetchDays(ctx, aggregator.TrailingDays(f.Now(), count))
}

// FetchMonthlyWindow fetches the last count months, the current one included, oldest first.
func (f *Fetcher) FetchMonthlyWindow(ctx context.Context, count int) Window[domain.MonthlySalesRecord] {
	return f.FetchMonths(ctx, aggregator.TrailingMonths(f.Now(), count))
}

func (f *Fetcher) FetchDays(ctx context.Context, days []time.Time) Window[domain.DailySalesRecord] {
	logger := zerolog.Ctx(ctx)
	return fetchAll(ctx, f.opts.MaxConcurrency, days,
		func(d time.Time) string { return d.Format(domain.DateLayout) },
		f.FetchDailySales,
		domain.ZeroDailySales,
		func(d time.Time, err error) {
			logger.Warn().
				Err(err).
				Str("endpoint", "daily-sales").
				Str("period", d.Format(domain.DateLayout)).
				Msg("daily sales fetch failed, using zero record")
		},
	)
}

func (f *Fetcher) FetchMonths(ctx context.Context, months []domain.MonthPeriod) Window[domain.MonthlySalesRecord] {
	logger := zerolog.Ctx(ctx)
	return fetchAll(ctx, f.opts.MaxConcurrency, months,
		domain.MonthPeriod.String,
		func(ctx context.Context, p domain.MonthPeriod) (domain.MonthlySalesRecord, error) {
			return f.FetchMonthlySales(ctx, p.Year, p.Month)
		},
		domain.ZeroMonthlySales,
		func(p domain.MonthPeriod, err error) {
			logger.Warn().
				Err(err).
				Str("endpoint", "monthly-sales").
				Str("period", p.String()).
				Msg("monthly sales fetch failed, using zero record")
		},
	)
}
