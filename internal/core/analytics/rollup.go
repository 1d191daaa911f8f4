package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// TopProductCount is how many products the product rollup returns.
const TopProductCount = 10

// ProductRollup aggregates one product's performance.
type ProductRollup struct {
	ProductName string          `json:"product_name"`
	Revenue     decimal.Decimal `json:"revenue"`
	Units       int             `json:"units"`
	Orders      int             `json:"orders"`
}

// MarketplaceRollup aggregates one marketplace's share of revenue.
type MarketplaceRollup struct {
	Marketplace string          `json:"marketplace"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
	Percentage  decimal.Decimal `json:"percentage"`
}

// CategoryRollup aggregates one category's totals.
type CategoryRollup struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Units    int             `json:"units"`
	// AvgUnitPrice is Revenue / Units, or zero when Units is zero.
	AvgUnitPrice decimal.Decimal `json:"avg_unit_price"`
}

type groupAcc struct {
	revenue decimal.Decimal
	units   int
	ids     map[string]struct{}
}

// accumulate folds the subset into per-key accumulators, returning keys in
// first-encountered order so stable sorts keep deterministic tie ordering.
func accumulate(orders []order.Order, keyFn func(order.Order) string) (map[string]*groupAcc, []string) {
	groups := make(map[string]*groupAcc)
	var keys []string
	for _, o := range orders {
		key := keyFn(o)
		acc, ok := groups[key]
		if !ok {
			acc = &groupAcc{revenue: decimal.Zero, ids: make(map[string]struct{})}
			groups[key] = acc
			keys = append(keys, key)
		}
		acc.revenue = acc.revenue.Add(o.Revenue)
		acc.units += o.Quantity
		acc.ids[o.OrderID] = struct{}{}
	}
	return groups, keys
}

// GroupByProduct returns the top products by revenue, descending, truncated
// to TopProductCount. Revenue ties keep first-encountered order.
func GroupByProduct(orders []order.Order) []ProductRollup {
	groups, keys := accumulate(orders, func(o order.Order) string { return o.ProductName })

	rollups := make([]ProductRollup, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		rollups = append(rollups, ProductRollup{
			ProductName: key,
			Revenue:     acc.revenue,
			Units:       acc.units,
			Orders:      len(acc.ids),
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Revenue.GreaterThan(rollups[j].Revenue)
	})

	if len(rollups) > TopProductCount {
		rollups = rollups[:TopProductCount]
	}
	return rollups
}

// GroupByMarketplace returns revenue per marketplace with each marketplace's
// percentage of total revenue, sorted by revenue descending. An empty subset
// yields an empty slice — percentages are never NaN.
func GroupByMarketplace(orders []order.Order) []MarketplaceRollup {
	groups, keys := accumulate(orders, func(o order.Order) string { return o.Marketplace })

	total := decimal.Zero
	for _, acc := range groups {
		total = total.Add(acc.revenue)
	}

	rollups := make([]MarketplaceRollup, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		pct := decimal.Zero
		if total.IsPositive() {
			pct = acc.revenue.Div(total).Mul(decimal.NewFromInt(100))
		}
		rollups = append(rollups, MarketplaceRollup{
			Marketplace: key,
			Revenue:     acc.revenue,
			Orders:      len(acc.ids),
			Percentage:  pct,
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Revenue.GreaterThan(rollups[j].Revenue)
	})
	return rollups
}

// GroupByCategory returns totals per category sorted by revenue ascending.
// The ascending direction is intentional: the category chart renders bars
// bottom-up, opposite to the product chart.
func GroupByCategory(orders []order.Order) []CategoryRollup {
	groups, keys := accumulate(orders, func(o order.Order) string { return o.Category })

	rollups := make([]CategoryRollup, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		avg := decimal.Zero
		if acc.units > 0 {
			avg = acc.revenue.Div(decimal.NewFromInt(int64(acc.units)))
		}
		rollups = append(rollups, CategoryRollup{
			Category:     key,
			Revenue:      acc.revenue,
			Units:        acc.units,
			AvgUnitPrice: avg,
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Revenue.LessThan(rollups[j].Revenue)
	})
	return rollups
}
