package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel filter values meaning "do not restrict this dimension".
// These match the labels the UI layer presents in its selectors.
const (
	AllCategories   = "All Categories"
	AllMarketplaces = "All Marketplaces"
)

// Order is one purchase line item. A single marketplace order may span
// multiple line items, so OrderID is not unique across records — distinct
// order counting happens in the analytics layer.
type Order struct {
	// OrderID is a marketplace-style identifier (e.g. "123-4567890-1234567").
	OrderID string `json:"order_id"`

	// OccurredAt is when the purchase happened. All timestamps are UTC.
	OccurredAt time.Time `json:"occurred_at"`

	// Category is one of the catalog's product categories.
	Category string `json:"category"`

	ProductName string `json:"product_name"`

	// Quantity is the number of units in this line item. Always >= 1.
	Quantity int `json:"quantity"`

	// UnitPrice is the post-discount price per unit.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Revenue is the line total. May carry synthetic multiplicative
	// adjustments on top of UnitPrice * Quantity, so it is stored, not derived.
	Revenue decimal.Decimal `json:"revenue"`

	// Marketplace is the locale-specific storefront (e.g. "Amazon.de (Germany)").
	Marketplace string `json:"marketplace"`
}

// Validate ensures the record satisfies the dataset invariants.
func (o *Order) Validate() error {
	if o.OrderID == "" {
		return fmt.Errorf("order_id is required")
	}
	if o.OccurredAt.IsZero() {
		return fmt.Errorf("occurred_at is required")
	}
	if o.Category == "" {
		return fmt.Errorf("category is required")
	}
	if o.ProductName == "" {
		return fmt.Errorf("product_name is required")
	}
	if o.Quantity < 1 {
		return fmt.Errorf("quantity must be >= 1, got %d", o.Quantity)
	}
	if !o.Revenue.IsPositive() {
		return fmt.Errorf("revenue must be positive, got %s", o.Revenue)
	}
	if o.Marketplace == "" {
		return fmt.Errorf("marketplace is required")
	}
	return nil
}

// FilterCriteria is the fully resolved filter selection for one dashboard
// interaction. Start/End are inclusive instant bounds; Category and
// Marketplace are exact-match values or the All* sentinels.
type FilterCriteria struct {
	Start       time.Time
	End         time.Time
	Category    string
	Marketplace string
}
