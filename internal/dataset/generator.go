package dataset

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerpulse/sellerpulse/internal/core/order"
)

// GeneratorOptions controls synthetic order generation.
type GeneratorOptions struct {
	// Records is the number of line items to generate.
	Records int

	// SpanDays is how far back from End the order timestamps reach.
	SpanDays int

	// Seed makes generation deterministic: the same seed, catalog and
	// options always produce the same dataset.
	Seed int64

	// End is the upper bound of the generated time range. Zero means now.
	End time.Time
}

// Generate produces a synthetic order dataset from the catalog. Timestamps
// fall on whole hours across the span. Revenue starts at unit price times
// quantity and picks up multiplicative boosts for weekends, the final 15
// "holiday" days of the span, and business hours, mirroring real traffic
// shape. Output is sorted by timestamp ascending.
func Generate(catalog *Catalog, opts GeneratorOptions) ([]order.Order, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if opts.Records <= 0 {
		return nil, fmt.Errorf("records must be positive, got %d", opts.Records)
	}
	if opts.SpanDays <= 0 {
		return nil, fmt.Errorf("span_days must be positive, got %d", opts.SpanDays)
	}

	end := opts.End
	if end.IsZero() {
		end = time.Now().UTC()
	}
	end = end.Truncate(time.Hour)
	start := end.AddDate(0, 0, -opts.SpanDays)
	hours := int(end.Sub(start) / time.Hour)
	holidayStart := end.AddDate(0, 0, -15)

	rng := rand.New(rand.NewSource(opts.Seed))

	catWeights := make([]float64, len(catalog.Categories))
	for i, c := range catalog.Categories {
		catWeights[i] = c.Weight
	}
	mktWeights := make([]float64, len(catalog.Marketplaces))
	for i, m := range catalog.Marketplaces {
		mktWeights[i] = m.Weight
	}

	orders := make([]order.Order, 0, opts.Records)
	for i := 0; i < opts.Records; i++ {
		occurredAt := start.Add(time.Duration(rng.Intn(hours+1)) * time.Hour)

		cat := catalog.Categories[weightedIndex(rng, catWeights)]
		product := cat.Products[rng.Intn(len(cat.Products))]
		marketplace := catalog.Marketplaces[weightedIndex(rng, mktWeights)].Name

		basePrice := cat.PriceMin + rng.Float64()*(cat.PriceMax-cat.PriceMin)
		discount := rng.Float64() * 0.2
		quantity := sampleQuantity(rng)

		unitPrice := decimal.NewFromFloat(basePrice * (1 - discount)).Round(2)
		revenue := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

		// Traffic-shape boosts compound on revenue, so revenue can exceed
		// unit price times quantity.
		if wd := occurredAt.Weekday(); wd == time.Saturday || wd == time.Sunday {
			revenue = boost(revenue, rng, 1.1, 1.3)
		}
		if !occurredAt.Before(holidayStart) {
			revenue = boost(revenue, rng, 1.2, 1.5)
		}
		if h := occurredAt.Hour(); h >= 9 && h <= 19 {
			revenue = boost(revenue, rng, 1.05, 1.2)
		}

		orders = append(orders, order.Order{
			OrderID:     orderID(rng),
			OccurredAt:  occurredAt,
			Category:    cat.Name,
			ProductName: product,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Revenue:     revenue.Round(2),
			Marketplace: marketplace,
		})
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OccurredAt.Before(orders[j].OccurredAt)
	})
	return orders, nil
}

// weightedIndex samples an index proportionally to the given weights.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sampleQuantity skews toward small orders: most purchases are 1-2 units.
func sampleQuantity(rng *rand.Rand) int {
	r := rng.Float64()
	switch {
	case r < 0.50:
		return 1
	case r < 0.80:
		return 2
	case r < 0.90:
		return 3
	case r < 0.97:
		return 4
	default:
		return 5
	}
}

func boost(v decimal.Decimal, rng *rand.Rand, lo, hi float64) decimal.Decimal {
	factor := lo + rng.Float64()*(hi-lo)
	return v.Mul(decimal.NewFromFloat(factor))
}

// orderID builds a marketplace-style id: XXX-XXXXXXX-XXXXXXX.
func orderID(rng *rand.Rand) string {
	const digits = "0123456789"
	buf := make([]byte, 19)
	for i := range buf {
		if i == 3 || i == 11 {
			buf[i] = '-'
			continue
		}
		buf[i] = digits[rng.Intn(len(digits))]
	}
	return string(buf)
}
