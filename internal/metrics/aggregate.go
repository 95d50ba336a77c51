package metrics

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the resampling bucket for the filtered series.
type Granularity int

const (
	Daily Granularity = iota
	Weekly
	Monthly
	Quarterly
)

var granularityNames = map[Granularity]string{
	Daily:     "daily",
	Weekly:    "weekly",
	Monthly:   "monthly",
	Quarterly: "quarterly",
}

func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

// ParseGranularity maps a CLI/config value onto a Granularity.
func ParseGranularity(value string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "daily":
		return Daily, nil
	case "weekly":
		return Weekly, nil
	case "monthly":
		return Monthly, nil
	case "quarterly":
		return Quarterly, nil
	default:
		return Daily, fmt.Errorf("unknown granularity %q (want daily, weekly, monthly, or quarterly)", value)
	}
}

// AggregatedRow is one time bucket with the four displayed metrics summed
// over the rows it covers.
type AggregatedRow struct {
	Bucket         time.Time
	Views          int64
	WatchHours     int64
	NetSubscribers int64
	Likes          int64
}

// Growth holds the last-bucket-minus-previous-bucket deltas for the four
// displayed metrics. All zero when fewer than two buckets exist.
type Growth struct {
	Views          int64
	WatchHours     int64
	NetSubscribers int64
	Likes          int64
}

// FilterAggregate restricts the series to [from, to] inclusive and resamples
// it at the requested granularity. Out-of-range or empty selections produce
// an empty result rather than an error.
//
// The underlying series has monthly resolution, so Daily is a documented
// no-op pass-through of the filtered rows.
func FilterAggregate(s Series, from, to time.Time, g Granularity) ([]AggregatedRow, Growth) {
	from = from.UTC()
	to = to.UTC()

	rows := make([]AggregatedRow, 0, len(s))
	for _, row := range s {
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}

		anchor := bucketAnchor(row.Date, g)
		if len(rows) > 0 && rows[len(rows)-1].Bucket.Equal(anchor) {
			last := &rows[len(rows)-1]
			last.Views += row.Views
			last.WatchHours += row.WatchHours
			last.NetSubscribers += row.NetSubscribers
			last.Likes += row.Likes
			continue
		}

		rows = append(rows, AggregatedRow{
			Bucket:         anchor,
			Views:          row.Views,
			WatchHours:     row.WatchHours,
			NetSubscribers: row.NetSubscribers,
			Likes:          row.Likes,
		})
	}

	return rows, growthDeltas(rows)
}

func growthDeltas(rows []AggregatedRow) Growth {
	if len(rows) < 2 {
		return Growth{}
	}
	last := rows[len(rows)-1]
	prev := rows[len(rows)-2]
	return Growth{
		Views:          last.Views - prev.Views,
		WatchHours:     last.WatchHours - prev.WatchHours,
		NetSubscribers: last.NetSubscribers - prev.NetSubscribers,
		Likes:          last.Likes - prev.Likes,
	}
}

// bucketAnchor maps a row date onto its bucket's anchor date.
func bucketAnchor(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	switch g {
	case Weekly:
		return weekStart(t)
	case Monthly:
		return monthStart(t)
	case Quarterly:
		quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// weekStart returns the Monday of the calendar week containing t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
