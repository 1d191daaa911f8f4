package analytics

import (
	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// Filter returns the subset of records matching all criteria. A record is
// kept iff its timestamp falls in [Start, End] (inclusive) and the category
// and marketplace predicates pass; the All* sentinels disable a predicate.
// The input slice is never mutated and relative ordering is preserved.
func Filter(orders []order.Order, c order.FilterCriteria) []order.Order {
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.OccurredAt.Before(c.Start) || o.OccurredAt.After(c.End) {
			continue
		}
		if c.Category != order.AllCategories && o.Category != c.Category {
			continue
		}
		if c.Marketplace != order.AllMarketplaces && o.Marketplace != c.Marketplace {
			continue
		}
		out = append(out, o)
	}
	return out
}
