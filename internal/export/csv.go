// Package export renders rollups and record lists as delimited text with
// fixed column order and human-readable headers. The emission mechanism
// (download endpoint, file) is the caller's concern.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sellerpulse/sellerpulse/internal/core/analytics"
	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// BestSellersHeader is the column contract of the best-sellers export.
var BestSellersHeader = []string{"Product", "Units Sold", "Revenue", "Order Count"}

// RecentOrdersHeader is the column contract of the recent-orders export.
var RecentOrdersHeader = []string{"Date", "Order ID", "Product", "Category", "Quantity", "Revenue", "Marketplace"}

// WriteBestSellers writes the top-product rollup as CSV.
func WriteBestSellers(w io.Writer, products []analytics.ProductRollup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BestSellersHeader); err != nil {
		return fmt.Errorf("writing best sellers header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.ProductName,
			strconv.Itoa(p.Units),
			formatCurrency(p.Revenue),
			strconv.Itoa(p.Orders),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing best sellers row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecentOrders writes the given records as CSV. Callers pass records
// already sorted newest first.
func WriteRecentOrders(w io.Writer, orders []order.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RecentOrdersHeader); err != nil {
		return fmt.Errorf("writing recent orders header: %w", err)
	}
	for _, o := range orders {
		record := []string{
			o.OccurredAt.Format("2006-01-02"),
			o.OrderID,
			o.ProductName,
			o.Category,
			strconv.Itoa(o.Quantity),
			formatCurrency(o.Revenue),
			o.Marketplace,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing recent orders row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
