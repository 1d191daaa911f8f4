package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerpulse/sellerpulse/internal/core/analytics"
	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// Query carries the user's filter selection. Mode defaults to quick select
// with the "Last 30 days" preset; category and marketplace default to their
// All* sentinels. Start/End are only read in custom mode.
type Query struct {
	Mode        string    `form:"mode"`
	Preset      string    `form:"preset"`
	Start       time.Time `form:"start" time_format:"2006-01-02"`
	End         time.Time `form:"end" time_format:"2006-01-02"`
	Category    string    `form:"category"`
	Marketplace string    `form:"marketplace"`
}

// WindowInfo echoes the resolved time window back to the client.
type WindowInfo struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// FilterInfo echoes the resolved dimension filters.
type FilterInfo struct {
	Category    string `json:"category"`
	Marketplace string `json:"marketplace"`
}

// KPIDeltas are the period-over-period comparison figures shown next to the
// KPI cards. There is no historical baseline in this system: the values are
// synthetic placeholders derived as fixed fractions of the current period,
// kept out of the analytics core on purpose.
type KPIDeltas struct {
	RevenueVsPrev        decimal.Decimal `json:"revenue_vs_prev"`
	OrdersVsPrev         int             `json:"orders_vs_prev"`
	AvgOrderValueVsPrev  decimal.Decimal `json:"avg_order_value_vs_prev_pct"`
	UnitsVsPrev          int             `json:"units_vs_prev"`
	ConversionRate       decimal.Decimal `json:"conversion_rate_pct"`
	ConversionRateVsPrev decimal.Decimal `json:"conversion_rate_vs_prev_pct"`
}

// OverviewResponse is the full dashboard payload: KPIs plus all four rollups.
type OverviewResponse struct {
	Window       WindowInfo                    `json:"window"`
	Filters      FilterInfo                    `json:"filters"`
	RecordCount  int                           `json:"record_count"`
	KPIs         analytics.KPISummary          `json:"kpis"`
	Deltas       KPIDeltas                     `json:"deltas"`
	Granularity  string                        `json:"granularity"`
	Trend        []analytics.TrendPoint        `json:"trend"`
	TopProducts  []analytics.ProductRollup     `json:"top_products"`
	Marketplaces []analytics.MarketplaceRollup `json:"marketplaces"`
	Categories   []analytics.CategoryRollup    `json:"categories"`
}

// TrendResponse is the standalone sales-trend payload.
type TrendResponse struct {
	Window      WindowInfo             `json:"window"`
	Granularity string                 `json:"granularity"`
	Points      []analytics.TrendPoint `json:"points"`
}

// ProductsResponse is the standalone top-products payload.
type ProductsResponse struct {
	Window   WindowInfo                `json:"window"`
	Products []analytics.ProductRollup `json:"products"`
}

// MarketplacesResponse is the standalone marketplace-share payload.
type MarketplacesResponse struct {
	Window       WindowInfo                    `json:"window"`
	Marketplaces []analytics.MarketplaceRollup `json:"marketplaces"`
}

// CategoriesResponse is the standalone category-distribution payload.
type CategoriesResponse struct {
	Window     WindowInfo                 `json:"window"`
	Categories []analytics.CategoryRollup `json:"categories"`
}

// RecentOrdersResponse lists the most recent filtered records, newest first.
type RecentOrdersResponse struct {
	Window WindowInfo    `json:"window"`
	Orders []order.Order `json:"orders"`
}

// MetaResponse describes the dataset so the UI can build its filter controls.
type MetaResponse struct {
	DataFrom     time.Time `json:"data_from"`
	DataThrough  time.Time `json:"data_through"`
	RecordCount  int       `json:"record_count"`
	Categories   []string  `json:"categories"`
	Marketplaces []string  `json:"marketplaces"`
	Presets      []string  `json:"presets"`
}
