package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sellerpulse/sellerpulse/internal/core/analytics"
	"github.com/sellerpulse/sellerpulse/internal/core/order"
	"github.com/sellerpulse/sellerpulse/internal/core/timewindow"
	"github.com/sellerpulse/sellerpulse/internal/dataset"
)

// ErrInvalidQuery marks request validation errors that should return HTTP 400.
var ErrInvalidQuery = errors.New("invalid dashboard query")

// Synthetic period-over-period ratios. The previous period is never actually
// computed — these are display placeholders pending real session/history data.
var (
	deltaRevenueRatio       = decimal.NewFromFloat(0.15)
	deltaOrdersRatio        = 0.12
	deltaAvgOrderValueRatio = decimal.NewFromFloat(0.05)
	deltaUnitsRatio         = 0.08
	mockConversionRate      = decimal.NewFromFloat(68.5)
	mockConversionDelta     = decimal.NewFromFloat(2.3)
)

// Service implements the dashboard query layer over the read-only dataset.
type Service struct {
	store       *dataset.Store
	recentLimit int
	exportLimit int
}

// NewService creates a dashboard service. recentLimit bounds the
// recent-orders view; exportLimit bounds the recent-orders CSV export.
func NewService(store *dataset.Store, recentLimit, exportLimit int) *Service {
	return &Service{
		store:       store,
		recentLimit: recentLimit,
		exportLimit: exportLimit,
	}
}

// resolve turns a raw query into a resolved window and filter criteria.
func (s *Service) resolve(q Query) (timewindow.Window, order.FilterCriteria, error) {
	if q.Mode == "" {
		q.Mode = timewindow.ModeQuickSelect
	}
	if q.Mode != timewindow.ModeQuickSelect && q.Mode != timewindow.ModeCustomRange {
		return timewindow.Window{}, order.FilterCriteria{},
			invalidQueryf("unknown mode %q (must be %s or %s)", q.Mode, timewindow.ModeQuickSelect, timewindow.ModeCustomRange)
	}
	if q.Mode == timewindow.ModeQuickSelect && q.Preset == "" {
		q.Preset = timewindow.PresetLast30Days
	}
	if q.Mode == timewindow.ModeCustomRange && (q.Start.IsZero() || q.End.IsZero()) {
		return timewindow.Window{}, order.FilterCriteria{},
			invalidQueryf("custom mode requires start and end dates")
	}
	if q.Category == "" {
		q.Category = order.AllCategories
	}
	if q.Marketplace == "" {
		q.Marketplace = order.AllMarketplaces
	}

	min, max := s.store.Bounds()
	win, err := timewindow.Resolve(timewindow.Request{
		Mode:   q.Mode,
		Preset: q.Preset,
		Start:  q.Start,
		End:    q.End,
	}, min, max)
	if err != nil {
		if errors.Is(err, timewindow.ErrInvalidRange) {
			return timewindow.Window{}, order.FilterCriteria{}, err
		}
		return timewindow.Window{}, order.FilterCriteria{}, fmt.Errorf("%w: %s", ErrInvalidQuery, err)
	}

	criteria := order.FilterCriteria{
		Start:       win.Start,
		End:         win.End,
		Category:    q.Category,
		Marketplace: q.Marketplace,
	}
	return win, criteria, nil
}

// Overview computes the full dashboard: KPIs plus all four rollups. The
// rollups are independent pure functions, so they run concurrently.
func (s *Service) Overview(ctx context.Context, q Query) (*OverviewResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}

	subset := analytics.Filter(s.store.Orders(), criteria)
	granularity := analytics.GranularityForLabel(win.Label)

	resp := &OverviewResponse{
		Window:      windowInfo(win),
		Filters:     FilterInfo{Category: criteria.Category, Marketplace: criteria.Marketplace},
		RecordCount: len(subset),
		Granularity: granularity.String(),
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.KPIs = analytics.ComputeKPIs(subset)
		resp.Deltas = mockDeltas(resp.KPIs)
		return nil
	})
	g.Go(func() error {
		resp.Trend = analytics.GroupByTimeBucket(subset, granularity, win.Start, win.End)
		return nil
	})
	g.Go(func() error {
		resp.TopProducts = analytics.GroupByProduct(subset)
		return nil
	})
	g.Go(func() error {
		resp.Marketplaces = analytics.GroupByMarketplace(subset)
		return nil
	})
	g.Go(func() error {
		resp.Categories = analytics.GroupByCategory(subset)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Trend computes only the time-bucketed sales series.
func (s *Service) Trend(q Query) (*TrendResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	granularity := analytics.GranularityForLabel(win.Label)
	return &TrendResponse{
		Window:      windowInfo(win),
		Granularity: granularity.String(),
		Points:      analytics.GroupByTimeBucket(subset, granularity, win.Start, win.End),
	}, nil
}

// TopProducts computes only the product rollup.
func (s *Service) TopProducts(q Query) (*ProductsResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return &ProductsResponse{
		Window:   windowInfo(win),
		Products: analytics.GroupByProduct(subset),
	}, nil
}

// Marketplaces computes only the marketplace-share rollup.
func (s *Service) Marketplaces(q Query) (*MarketplacesResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return &MarketplacesResponse{
		Window:       windowInfo(win),
		Marketplaces: analytics.GroupByMarketplace(subset),
	}, nil
}

// Categories computes only the category rollup.
func (s *Service) Categories(q Query) (*CategoriesResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return &CategoriesResponse{
		Window:     windowInfo(win),
		Categories: analytics.GroupByCategory(subset),
	}, nil
}

// RecentOrders returns the newest filtered records for the on-page table.
func (s *Service) RecentOrders(q Query) (*RecentOrdersResponse, error) {
	win, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return &RecentOrdersResponse{
		Window: windowInfo(win),
		Orders: newestFirst(subset, s.recentLimit),
	}, nil
}

// BestSellersExport returns the top-product rollup for the CSV download.
func (s *Service) BestSellersExport(q Query) ([]analytics.ProductRollup, error) {
	_, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return analytics.GroupByProduct(subset), nil
}

// RecentOrdersExport returns the newest filtered records for the CSV download.
// The export window is wider than the on-page table.
func (s *Service) RecentOrdersExport(q Query) ([]order.Order, error) {
	_, criteria, err := s.resolve(q)
	if err != nil {
		return nil, err
	}
	subset := analytics.Filter(s.store.Orders(), criteria)
	return newestFirst(subset, s.exportLimit), nil
}

// Meta describes the dataset for the UI's filter controls.
func (s *Service) Meta() *MetaResponse {
	min, max := s.store.Bounds()
	return &MetaResponse{
		DataFrom:     min,
		DataThrough:  max,
		RecordCount:  s.store.Count(),
		Categories:   s.store.Categories(),
		Marketplaces: s.store.Marketplaces(),
		Presets:      timewindow.Presets,
	}
}

// newestFirst returns up to limit records sorted by timestamp descending
// without mutating the input.
func newestFirst(orders []order.Order, limit int) []order.Order {
	out := make([]order.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func mockDeltas(kpis analytics.KPISummary) KPIDeltas {
	return KPIDeltas{
		RevenueVsPrev:        kpis.TotalRevenue.Mul(deltaRevenueRatio).Round(2),
		OrdersVsPrev:         int(float64(kpis.TotalOrders) * deltaOrdersRatio),
		AvgOrderValueVsPrev:  kpis.AvgOrderValue.Mul(deltaAvgOrderValueRatio).Round(2),
		UnitsVsPrev:          int(float64(kpis.TotalUnits) * deltaUnitsRatio),
		ConversionRate:       mockConversionRate,
		ConversionRateVsPrev: mockConversionDelta,
	}
}

func windowInfo(win timewindow.Window) WindowInfo {
	return WindowInfo{Start: win.Start, End: win.End, Label: win.Label}
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
