package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// Store holds the session's raw order records. It is built once at startup
// and never mutated afterwards, so it is safe for unsynchronized concurrent
// reads from any number of dashboard sessions.
type Store struct {
	orders       []order.Order
	min, max     time.Time
	categories   []string
	marketplaces []string
}

// NewStore validates every record and indexes the dataset's bounds and
// dimension values. Records are kept in the given order.
func NewStore(orders []order.Order) (*Store, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("dataset must not be empty")
	}

	s := &Store{orders: orders}
	catSet := make(map[string]struct{})
	mktSet := make(map[string]struct{})

	for i := range orders {
		o := &orders[i]
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if s.min.IsZero() || o.OccurredAt.Before(s.min) {
			s.min = o.OccurredAt
		}
		if o.OccurredAt.After(s.max) {
			s.max = o.OccurredAt
		}
		catSet[o.Category] = struct{}{}
		mktSet[o.Marketplace] = struct{}{}
	}

	s.categories = sortedKeys(catSet)
	s.marketplaces = sortedKeys(mktSet)
	return s, nil
}

// Orders returns the raw record set. Callers must treat it as read-only.
func (s *Store) Orders() []order.Order {
	return s.orders
}

// Bounds returns the dataset's min and max timestamps.
func (s *Store) Bounds() (time.Time, time.Time) {
	return s.min, s.max
}

// Categories returns the distinct category values, sorted.
func (s *Store) Categories() []string {
	return s.categories
}

// Marketplaces returns the distinct marketplace values, sorted.
func (s *Store) Marketplaces() []string {
	return s.marketplaces
}

// Count returns the number of records.
func (s *Store) Count() int {
	return len(s.orders)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
