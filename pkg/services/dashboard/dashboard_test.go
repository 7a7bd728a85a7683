package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fsms/report-atlas/pkg/models/api"
	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream unavailable")

func fixedNow() time.Time {
	return time.Date(2025, time.May, 7, 18, 30, 0, 0, time.UTC)
}

type stubClient struct {
	mu            sync.Mutex
	daily         map[string]float64
	failedMonths  map[string]bool
	monthCalls    int
	inventoryFn   func(ctx context.Context) (*api.InventoryPayload, error)
	financial     *api.FinancialSummaryPayload
	summaryFn     func(ctx context.Context, period domain.DateRange) (*api.FinancialSummaryPayload, error)
	summaryRanges []string
}

func (s *stubClient) GetDailySales(_ context.Context, date time.Time) (*api.DailySalesPayload, error) {
	total, ok := s.daily[date.Format(domain.DateLayout)]
	if !ok {
		return nil, errUpstream
	}
	return &api.DailySalesPayload{
		Summary:     &api.SalesSummary{TotalSales: total, TotalTransactions: 2},
		SalesByPump: map[string]float64{"P1": total},
	}, nil
}

func (s *stubClient) GetMonthlySales(_ context.Context, year int, month time.Month) (*api.MonthlySalesPayload, error) {
	s.mu.Lock()
	s.monthCalls++
	s.mu.Unlock()
	if s.failedMonths[domain.MonthPeriod{Year: year, Month: month}.String()] {
		return nil, errUpstream
	}
	return &api.MonthlySalesPayload{Summary: &api.SalesSummary{TotalSales: 100, TotalTransactions: 4}}, nil
}

func (s *stubClient) GetInventory(ctx context.Context) (*api.InventoryPayload, error) {
	if s.inventoryFn == nil {
		return nil, errUpstream
	}
	return s.inventoryFn(ctx)
}

func (s *stubClient) GetFinancialSummary(ctx context.Context, period domain.DateRange) (*api.FinancialSummaryPayload, error) {
	s.mu.Lock()
	s.summaryRanges = append(s.summaryRanges, period.String())
	s.mu.Unlock()
	if s.summaryFn != nil {
		return s.summaryFn(ctx, period)
	}
	if s.financial == nil {
		return nil, errUpstream
	}
	return s.financial, nil
}

func inventoryOf(items ...api.InventoryItem) func(context.Context) (*api.InventoryPayload, error) {
	return func(context.Context) (*api.InventoryPayload, error) {
		return &api.InventoryPayload{Inventory: items}, nil
	}
}

func weekWithGap() map[string]float64 {
	days := map[string]float64{}
	for d := 1; d <= 7; d++ {
		if d == 4 {
			continue
		}
		days[fmt.Sprintf("2025-05-%02d", d)] = 100
	}
	return days
}

func newTestService(c *stubClient) *Service {
	f := fetcher.New(c, fetcher.Options{Estimates: domain.DefaultEstimates(), Now: fixedNow})
	return NewService(f, Options{})
}

func TestLoadAll_FillsEveryTab(t *testing.T) {
	// Given
	c := &stubClient{
		daily: weekWithGap(),
		inventoryFn: inventoryOf(
			api.InventoryItem{FuelType: "Petrol", OpeningStock: 1000, CurrentStock: 1200, StockIn: 500, StockOut: 300},
			api.InventoryItem{FuelType: "Premium", OpeningStock: 400, CurrentStock: 470, StockIn: 200, StockOut: 100},
		),
		financial: &api.FinancialSummaryPayload{
			Summary: &api.FinancialSummary{TotalRevenue: 1200, TotalExpenses: 800, NetIncome: 400},
		},
	}
	svc := newTestService(c)

	// When
	st, err := svc.LoadAll(context.Background(), nil)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "2025-04-30 - 2025-05-07", st.Range.String())
	assert.Equal(t, fixedNow(), st.UpdatedAt)

	assert.Equal(t, domain.OverviewMetrics{
		TotalRevenue:      1200,
		NetProfit:         400,
		TotalTransactions: 12,
		AvgTransaction:    100,
		Partial:           true,
	}, st.Overview)

	require.Len(t, st.Sales.Days, 7)
	assert.Equal(t, []string{"2025-05-04"}, st.Sales.MissingPeriods)
	require.Len(t, st.Sales.Pumps, 1)
	assert.Equal(t, 600.0, st.Sales.Pumps[0].TotalSales)

	require.Len(t, st.Inventory.Lines, 2)
	require.Len(t, st.Inventory.Discrepancies, 1)
	assert.Equal(t, "Premium", st.Inventory.Discrepancies[0].FuelType)
	assert.Equal(t, 470.0, st.Inventory.Lines[1].ClosingStock)

	assert.Equal(t, 400.0, st.Financial.Summary.NetProfit)
	assert.Len(t, st.Financial.AllTime.MonthlyTrends, 12)
	require.Len(t, st.Financial.AllTime.YearlyBreakdown, 2)
	assert.Equal(t, 2024, st.Financial.AllTime.YearlyBreakdown[0].Year)
	assert.Equal(t, 1200.0, st.Financial.AllTime.YearlyBreakdown[1].Revenue)
	assert.Empty(t, st.Financial.AllTime.MissingPeriods)
	assert.Equal(t, 24, c.monthCalls)
}

func TestLoadTab_SupersededLoadIsDropped(t *testing.T) {
	// Given
	started := make(chan context.Context, 1)
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex
	c := &stubClient{
		inventoryFn: func(ctx context.Context) (*api.InventoryPayload, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				started <- ctx
				<-release
				return &api.InventoryPayload{Inventory: []api.InventoryItem{{FuelType: "Petrol", CurrentStock: 10}}}, nil
			}
			return &api.InventoryPayload{Inventory: []api.InventoryItem{{FuelType: "Diesel", CurrentStock: 20}}}, nil
		},
	}
	svc := newTestService(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.LoadTab(context.Background(), "inventory", nil)
	}()
	firstCtx := <-started

	// When
	st, err := svc.LoadTab(context.Background(), "Inventory", nil)
	require.NoError(t, err)
	close(release)
	<-done

	// Then
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	require.Len(t, st.Inventory.Lines, 1)
	assert.Equal(t, "Diesel", st.Inventory.Lines[0].FuelType)
	final := svc.Snapshot()
	require.Len(t, final.Inventory.Lines, 1)
	assert.Equal(t, "Diesel", final.Inventory.Lines[0].FuelType)
}

func TestLoadTab_LoadForReplacedRangeIsDropped(t *testing.T) {
	// Given
	january := domain.DateRange{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
	february := domain.DateRange{
		Start: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
	}
	started := make(chan struct{})
	release := make(chan struct{})
	c := &stubClient{
		summaryFn: func(_ context.Context, period domain.DateRange) (*api.FinancialSummaryPayload, error) {
			if period.Equal(january) {
				close(started)
				<-release
				return &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 111}}, nil
			}
			return &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 222}}, nil
		},
	}
	svc := newTestService(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.LoadTab(context.Background(), "overview", &january)
	}()
	<-started

	// When
	_, err := svc.LoadTab(context.Background(), "financial", &february)
	require.NoError(t, err)
	close(release)
	<-done

	// Then
	st := svc.Snapshot()
	assert.True(t, st.Range.Equal(february))
	assert.Zero(t, st.Overview.TotalRevenue)
	assert.Equal(t, 222.0, st.Financial.Summary.TotalRevenue)
}

func TestLoadTab_InventoryFailureKeepsPreviousLines(t *testing.T) {
	c := &stubClient{inventoryFn: inventoryOf(api.InventoryItem{FuelType: "Diesel", CurrentStock: 20})}
	svc := newTestService(c)
	_, err := svc.LoadTab(context.Background(), "inventory", nil)
	require.NoError(t, err)

	c.inventoryFn = nil
	st, err := svc.LoadTab(context.Background(), "inventory", nil)

	require.NoError(t, err)
	require.Len(t, st.Inventory.Lines, 1)
	assert.Equal(t, "Diesel", st.Inventory.Lines[0].FuelType)
}

func TestLoadTab_OverviewWithoutSummaryIsZero(t *testing.T) {
	svc := newTestService(&stubClient{daily: weekWithGap()})

	st, err := svc.LoadTab(context.Background(), "overview", nil)

	require.NoError(t, err)
	assert.Equal(t, domain.OverviewMetrics{}, st.Overview)
}

func TestLoadAll_FailedTabsFallBackPerTab(t *testing.T) {
	// Given
	c := &stubClient{
		daily:       weekWithGap(),
		inventoryFn: inventoryOf(api.InventoryItem{FuelType: "Diesel", CurrentStock: 20}),
		financial:   &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 1200, NetIncome: 400}},
	}
	svc := newTestService(c)
	_, err := svc.LoadAll(context.Background(), nil)
	require.NoError(t, err)

	// When
	c.inventoryFn = nil
	c.financial = nil
	st, err := svc.LoadAll(context.Background(), nil)

	// Then
	require.NoError(t, err)
	require.Len(t, st.Inventory.Lines, 1)
	assert.Equal(t, "Diesel", st.Inventory.Lines[0].FuelType)
	assert.Equal(t, domain.OverviewMetrics{}, st.Overview)
	assert.Equal(t, domain.EmptyFinancialSummary(), st.Financial.Summary)
	assert.Len(t, st.Sales.Days, 7)
}

func TestLoadTab_UsesSelectedRange(t *testing.T) {
	c := &stubClient{financial: &api.FinancialSummaryPayload{Summary: &api.FinancialSummary{TotalRevenue: 50}}}
	svc := newTestService(c)
	r, err := domain.ParseDateRange("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	st, err := svc.LoadTab(context.Background(), "financial", &r)

	require.NoError(t, err)
	assert.Equal(t, r, st.Range)
	assert.Contains(t, c.summaryRanges, "2025-01-01 - 2025-01-31")
	assert.Contains(t, c.summaryRanges, "2023-05-07 - 2025-05-07")
	assert.Equal(t, 50.0, st.Financial.Summary.TotalRevenue)
}

func TestLoadTab_RejectsBadInput(t *testing.T) {
	svc := newTestService(&stubClient{})

	_, err := svc.LoadTab(context.Background(), "reports", nil)
	var unknown *UnknownTabError
	assert.ErrorAs(t, err, &unknown)

	inverted := domain.DateRange{Start: fixedNow(), End: fixedNow().AddDate(0, 0, -2)}
	_, err = svc.LoadTab(context.Background(), "sales", &inverted)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.LoadAll(context.Background(), &inverted)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestFinancialOverview_FailedMonthIsFetchedOnceAndReported(t *testing.T) {
	// Given
	c := &stubClient{failedMonths: map[string]bool{"2025-03": true}}
	svc := newTestService(c)

	// When
	overview := svc.FinancialOverview(context.Background())

	// Then
	assert.Equal(t, []string{"2023-05-07 - 2025-05-07", "2025-03"}, overview.MissingPeriods)
	assert.True(t, overview.Partial())
	assert.Equal(t, 24, c.monthCalls)

	var march domain.MonthlyTrendPoint
	for _, p := range overview.MonthlyTrends {
		if p.Label == "Mar 25" {
			march = p
		}
	}
	assert.Equal(t, 0.0, march.Revenue)
	assert.Equal(t, 1100.0, overview.YearlyBreakdown[1].Revenue)
}

func TestUnionMonths_SortedWithoutDuplicates(t *testing.T) {
	got := unionMonths(
		[]domain.MonthPeriod{{Year: 2025, Month: time.January}, {Year: 2024, Month: time.December}},
		[]domain.MonthPeriod{{Year: 2024, Month: time.December}, {Year: 2024, Month: time.November}},
	)

	assert.Equal(t, []domain.MonthPeriod{
		{Year: 2024, Month: time.November},
		{Year: 2024, Month: time.December},
		{Year: 2025, Month: time.January},
	}, got)
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab(" Sales ")
	require.NoError(t, err)
	assert.Equal(t, TabSales, tab)
}
