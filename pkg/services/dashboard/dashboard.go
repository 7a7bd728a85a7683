package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsms/report-atlas/pkg/models/domain"
	"github.com/fsms/report-atlas/pkg/services/aggregator"
	"github.com/fsms/report-atlas/pkg/services/fetcher"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Tab string

const (
	TabOverview  Tab = "overview"
	TabSales     Tab = "sales"
	TabInventory Tab = "inventory"
	TabFinancial Tab = "financial"
)

var tabs = []Tab{TabOverview, TabSales, TabInventory, TabFinancial}

type UnknownTabError struct {
	Name string
}

func (e *UnknownTabError) Error() string {
	return fmt.Sprintf("unknown dashboard tab: %q", e.Name)
}

func ParseTab(name string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range tabs {
		if t == known {
			return t, nil
		}
	}
	return "", &UnknownTabError{Name: name}
}

// usesRange reports whether the tab's content depends on the selected range.
func (t Tab) usesRange() bool {
	return t == TabOverview || t == TabFinancial
}

type Options struct {
	DailyWindow   int
	MonthlyWindow int
	YearlyWindow  int
	// RangeDays is the default look-back of the selected date range.
	RangeDays      int
	StockTolerance float64
}

type SalesState struct {
	Days           []domain.DailySalesRecord
	Pumps          []domain.PumpPerformanceRecord
	MissingPeriods []string
}

type InventoryState struct {
	Lines         []domain.InventoryLineRecord
	Discrepancies []domain.InventoryDiscrepancy
}

type FinancialState struct {
	Summary domain.FinancialSummaryRecord
	AllTime domain.FinancialOverview
}

// State is what the dashboard currently shows. Each section is replaced as a
// whole by the latest load of its tab.
type State struct {
	Range     domain.DateRange
	Overview  domain.OverviewMetrics
	Sales     SalesState
	Inventory InventoryState
	Financial FinancialState
	UpdatedAt time.Time
}

// Service keeps dashboard state fresh. Concurrent loads of the same tab are
// resolved last-write-wins: a load that was superseded never touches state.
type Service struct {
	fetcher *fetcher.Fetcher
	tracker *Tracker
	opts    Options

	mu    sync.RWMutex
	state State
}

func NewService(f *fetcher.Fetcher, opts Options) *Service {
	if opts.DailyWindow <= 0 {
		opts.DailyWindow = 7
	}
	if opts.MonthlyWindow <= 0 {
		opts.MonthlyWindow = 12
	}
	if opts.YearlyWindow <= 0 {
		opts.YearlyWindow = 2
	}
	if opts.RangeDays <= 0 {
		opts.RangeDays = 7
	}
	if opts.StockTolerance <= 0 {
		opts.StockTolerance = aggregator.DefaultStockTolerance
	}

	s := &Service{fetcher: f, tracker: NewTracker(), opts: opts}
	s.state = emptyState(domain.LastDays(f.Now(), opts.RangeDays))
	return s
}

func emptyState(r domain.DateRange) State {
	return State{
		Range: r,
		Sales: SalesState{
			Days:  []domain.DailySalesRecord{},
			Pumps: []domain.PumpPerformanceRecord{},
		},
		Inventory: InventoryState{Lines: []domain.InventoryLineRecord{}},
		Financial: FinancialState{
			Summary: domain.EmptyFinancialSummary(),
			AllTime: domain.FinancialOverview{
				Summary:         domain.EmptyFinancialSummary(),
				MonthlyTrends:   []domain.MonthlyTrendPoint{},
				YearlyBreakdown: []domain.YearlyBreakdownPoint{},
			},
		},
	}
}

// Snapshot returns the current state.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetRange changes the selected date range used by later loads.
func (s *Service) SetRange(r domain.DateRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Range = r
	return nil
}

// Close cancels every load still in flight.
func (s *Service) Close() {
	s.tracker.CancelAll()
}

// LoadAll refreshes every tab concurrently. A failing tab does not stop the
// others. Inventory keeps its previous lines when the fetch fails, while the
// overview and the financial summary fall back to zero values.
func (s *Service) LoadAll(ctx context.Context, r *domain.DateRange) (State, error) {
	if r != nil {
		if err := s.SetRange(*r); err != nil {
			return State{}, err
		}
	}

	var g errgroup.Group
	for _, tab := range tabs {
		g.Go(func() error {
			s.load(ctx, tab)
			return nil
		})
	}
	_ = g.Wait()

	return s.Snapshot(), nil
}

// LoadTab refreshes a single tab.
func (s *Service) LoadTab(ctx context.Context, name string, r *domain.DateRange) (State, error) {
	tab, err := ParseTab(name)
	if err != nil {
		return State{}, err
	}
	if r != nil {
		if err := s.SetRange(*r); err != nil {
			return State{}, err
		}
	}
	s.load(ctx, tab)
	return s.Snapshot(), nil
}

func (s *Service) load(ctx context.Context, tab Tab) {
	key := string(tab)
	ctx, gen := s.tracker.Begin(ctx, key)
	logger := zerolog.Ctx(ctx).With().Str("tab", key).Uint64("generation", gen).Logger()
	ctx = logger.WithContext(ctx)

	r := s.Snapshot().Range
	var apply func(*State)
	switch tab {
	case TabOverview:
		apply = s.loadOverview(ctx, r)
	case TabSales:
		apply = s.loadSales(ctx)
	case TabInventory:
		apply = s.loadInventory(ctx)
	case TabFinancial:
		apply = s.loadFinancial(ctx, r)
	}
	if apply == nil {
		s.tracker.Commit(key, gen, func() {})
		return
	}

	var rangeChanged bool
	committed := s.tracker.Commit(key, gen, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if tab.usesRange() && !s.state.Range.Equal(r) {
			rangeChanged = true
			return
		}
		apply(&s.state)
		s.state.UpdatedAt = s.fetcher.Now()
	})
	switch {
	case !committed:
		logger.Debug().Msg("dropping superseded dashboard load")
	case rangeChanged:
		logger.Debug().Str("period", r.String()).Msg("dropping dashboard load for a replaced range")
	}
}

func (s *Service) loadOverview(ctx context.Context, r domain.DateRange) func(*State) {
	summary, err := s.fetcher.FetchFinancialSummary(ctx, r)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("overview financial summary unavailable")
		return func(st *State) { st.Overview = domain.OverviewMetrics{} }
	}

	w := s.fetcher.FetchDailyWindow(ctx, s.opts.DailyWindow)
	metrics := aggregator.Overview(summary, w.Records)
	metrics.Partial = w.Partial()
	return func(st *State) { st.Overview = metrics }
}

func (s *Service) loadSales(ctx context.Context) func(*State) {
	w := s.fetcher.FetchDailyWindow(ctx, s.opts.DailyWindow)
	sales := SalesState{
		Days:           w.Records,
		Pumps:          aggregator.AggregatePumps(w.Records, s.fetcher.Estimates()),
		MissingPeriods: w.MissingPeriods(),
	}
	return func(st *State) { st.Sales = sales }
}

func (s *Service) loadInventory(ctx context.Context) func(*State) {
	logger := zerolog.Ctx(ctx)

	lines, err := s.fetcher.FetchInventoryReport(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("inventory unavailable, keeping previous lines")
		return nil
	}

	discrepancies := aggregator.InventoryDiscrepancies(lines, s.opts.StockTolerance)
	for _, d := range discrepancies {
		logger.Warn().
			Str("fuel_type", d.FuelType).
			Float64("expected_closing", d.ExpectedClosing).
			Float64("reported_closing", d.ReportedClosing).
			Float64("difference", d.Difference).
			Msg("closing stock does not match movements")
	}
	inv := InventoryState{Lines: lines, Discrepancies: discrepancies}
	return func(st *State) { st.Inventory = inv }
}

func (s *Service) loadFinancial(ctx context.Context, r domain.DateRange) func(*State) {
	var (
		summary    domain.FinancialSummaryRecord
		summaryErr error
		overview   domain.FinancialOverview
	)

	var g errgroup.Group
	g.Go(func() error {
		summary, summaryErr = s.fetcher.FetchFinancialSummary(ctx, r)
		return nil
	})
	g.Go(func() error {
		overview = s.FinancialOverview(ctx)
		return nil
	})
	_ = g.Wait()

	if summaryErr != nil {
		zerolog.Ctx(ctx).Warn().Err(summaryErr).Str("period", r.String()).Msg("financial summary unavailable")
		summary = domain.EmptyFinancialSummary()
	}
	return func(st *State) {
		st.Financial = FinancialState{Summary: summary, AllTime: overview}
	}
}
