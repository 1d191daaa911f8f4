package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// KPISummary holds the scalar metrics for a filtered record set.
type KPISummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// TotalOrders counts distinct order ids, not line items. One order that
	// spans three line items contributes 1 here and 3 to len(subset).
	TotalOrders int `json:"total_orders"`

	TotalUnits int `json:"total_units"`

	// AvgOrderValue is TotalRevenue / TotalOrders, or zero when the subset
	// contains no orders.
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`
}

// ComputeKPIs derives the scalar KPI summary from a filtered subset.
// An empty subset yields all-zero values, never an error.
func ComputeKPIs(orders []order.Order) KPISummary {
	revenue := decimal.Zero
	units := 0
	seen := make(map[string]struct{}, len(orders))

	for _, o := range orders {
		revenue = revenue.Add(o.Revenue)
		units += o.Quantity
		seen[o.OrderID] = struct{}{}
	}

	avg := decimal.Zero
	if len(seen) > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(len(seen))))
	}

	return KPISummary{
		TotalRevenue:  revenue,
		TotalOrders:   len(seen),
		TotalUnits:    units,
		AvgOrderValue: avg,
	}
}
