package dashboard

import (
	"context"
	"slices"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/aggregator"
	"github.com/rs/zerolog"
)

// FinancialOverview builds the all-time view: a summary over the yearly
// window plus monthly trends and a yearly breakdown. Trends and breakdown
// share one concurrent fetch of every month they need.
func (s *Service) FinancialOverview(ctx context.Context) domain.FinancialOverview {
	now := s.fetcher.Now()
	est := s.fetcher.Estimates()

	years := aggregator.TrailingYears(now, s.opts.YearlyWindow)
	trailing := aggregator.TrailingMonths(now, s.opts.MonthlyWindow)
	months := unionMonths(aggregator.MonthsOfYears(years), trailing)

	end := domain.TruncateDay(now)
	allTime := domain.DateRange{Start: end.AddDate(-s.opts.YearlyWindow, 0, 0), End: end}

	overview := domain.FinancialOverview{Summary: domain.EmptyFinancialSummary()}
	summary, err := s.fetcher.FetchFinancialSummary(ctx, allTime)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("period", allTime.String()).Msg("all-time financial summary unavailable")
		overview.MissingPeriods = append(overview.MissingPeriods, allTime.String())
	} else {
		overview.Summary = summary
	}

	w := s.fetcher.FetchMonths(ctx, months)
	byPeriod := make(map[domain.MonthPeriod]domain.MonthlySalesRecord, len(w.Records))
	for _, r := range w.Records {
		byPeriod[r.Period()] = r
	}

	trend := make([]domain.MonthlySalesRecord, 0, len(trailing))
	for _, p := range trailing {
		trend = append(trend, byPeriod[p])
	}
	overview.MonthlyTrends = aggregator.MonthlyTrends(trend, est)
	overview.YearlyBreakdown = aggregator.YearlyBreakdown(years, w.Records, est)
	overview.MissingPeriods = append(overview.MissingPeriods, w.MissingPeriods()...)
	return overview
}

// unionMonths merges month lists into one sorted list without duplicates.
func unionMonths(lists ...[]domain.MonthPeriod) []domain.MonthPeriod {
	seen := map[domain.MonthPeriod]bool{}
	var out []domain.MonthPeriod
	for _, list := range lists {
		for _, p := range list {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	slices.SortFunc(out, func(a, b domain.MonthPeriod) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return int(a.Month) - int(b.Month)
	})
	return out
}
