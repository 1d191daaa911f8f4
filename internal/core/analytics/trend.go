package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sellerpulse/sellerpulse/internal/core/order"
	"github.com/sellerpulse/sellerpulse/internal/core/timewindow"
)

// Granularity is the bucket width of the sales trend series.
type Granularity time.Duration

const (
	// GranularityFourHour is used for 7-day windows.
	GranularityFourHour = Granularity(4 * time.Hour)
	// GranularityDaily is used for 30-day windows.
	GranularityDaily = Granularity(24 * time.Hour)
	// GranularityWeekly is used for every wider window.
	GranularityWeekly = Granularity(7 * 24 * time.Hour)
)

// GranularityForLabel maps a resolved window label to the trend bucket width.
// The coupling is deliberate: a custom range spanning exactly 7 days snaps to
// the "Last 7 days" label and therefore also gets 4-hour buckets.
func GranularityForLabel(label string) Granularity {
	switch label {
	case timewindow.PresetLast7Days:
		return GranularityFourHour
	case timewindow.PresetLast30Days:
		return GranularityDaily
	default:
		return GranularityWeekly
	}
}

func (g Granularity) String() string {
	switch g {
	case GranularityFourHour:
		return "4h"
	case GranularityDaily:
		return "1d"
	case GranularityWeekly:
		return "1w"
	default:
		return time.Duration(g).String()
	}
}

// TrendPoint is one bucket of the time-series rollup.
type TrendPoint struct {
	BucketStart time.Time       `json:"bucket_start"`
	Revenue     decimal.Decimal `json:"revenue"`
	Orders      int             `json:"orders"`
}

// GroupByTimeBucket rolls the subset up into fixed-width time buckets covering
// [windowStart, windowEnd]. Buckets with no records are emitted with zero
// values rather than omitted, so downstream charts get a continuous series.
// Orders per bucket counts distinct order ids within that bucket.
func GroupByTimeBucket(orders []order.Order, g Granularity, windowStart, windowEnd time.Time) []TrendPoint {
	type bucketAcc struct {
		revenue decimal.Decimal
		ids     map[string]struct{}
	}

	buckets := make(map[time.Time]*bucketAcc)
	for _, o := range orders {
		key := bucketFor(o.OccurredAt, g)
		acc, ok := buckets[key]
		if !ok {
			acc = &bucketAcc{revenue: decimal.Zero, ids: make(map[string]struct{})}
			buckets[key] = acc
		}
		acc.revenue = acc.revenue.Add(o.Revenue)
		acc.ids[o.OrderID] = struct{}{}
	}

	width := time.Duration(g)
	var points []TrendPoint
	for cur := bucketFor(windowStart, g); !cur.After(windowEnd); cur = cur.Add(width) {
		point := TrendPoint{BucketStart: cur, Revenue: decimal.Zero}
		if acc, ok := buckets[cur]; ok {
			point.Revenue = acc.revenue
			point.Orders = len(acc.ids)
		}
		points = append(points, point)
	}
	return points
}

// bucketFor truncates a timestamp to its bucket boundary. Daily and weekly
// buckets align to calendar days (weekly buckets start on Monday); sub-day
// buckets align to fixed offsets from midnight.
func bucketFor(t time.Time, g Granularity) time.Time {
	day := truncateToDay(t)
	switch g {
	case GranularityDaily:
		return day
	case GranularityWeekly:
		// Monday-based week start.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	default:
		return day.Add(t.Sub(day).Truncate(time.Duration(g)))
	}
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
