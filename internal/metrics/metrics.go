package metrics

import (
	"fmt"
	"time"
)

// MonthLayout is the wire format for month-resolution dates (e.g. "2019-08").
const MonthLayout = "2006-01"

// Metric enumerates the raw monthly channel metrics.
type Metric int

const (
	SubscribersGained Metric = iota
	SubscribersLost
	Views
	WatchHours
	Likes
	Shares
	Comments

	metricCount
)

var metricNames = map[Metric]string{
	SubscribersGained: "subscribers_gained",
	SubscribersLost:   "subscribers_lost",
	Views:             "views",
	WatchHours:        "watch_hours",
	Likes:             "likes",
	Shares:            "shares",
	Comments:          "comments",
}

// Metrics lists every raw metric in canonical order.
func Metrics() []Metric {
	out := make([]Metric, 0, metricCount)
	for m := Metric(0); m < metricCount; m++ {
		out = append(out, m)
	}
	return out
}

func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return fmt.Sprintf("metric(%d)", int(m))
}

// MetricRow holds one calendar month of channel activity. Every numeric field
// is a non-negative integer.
type MetricRow struct {
	Date              time.Time
	SubscribersGained int64
	SubscribersLost   int64
	Views             int64
	WatchHours        int64
	Likes             int64
	Shares            int64
	Comments          int64
	NetSubscribers    int64
}

// Value returns the row's value for a raw metric.
func (r MetricRow) Value(m Metric) int64 {
	switch m {
	case SubscribersGained:
		return r.SubscribersGained
	case SubscribersLost:
		return r.SubscribersLost
	case Views:
		return r.Views
	case WatchHours:
		return r.WatchHours
	case Likes:
		return r.Likes
	case Shares:
		return r.Shares
	case Comments:
		return r.Comments
	default:
		return 0
	}
}

// Series is an ordered sequence of MetricRow, one per calendar month,
// contiguous over the generated window. Derived views never mutate it.
type Series []MetricRow

// ParseMonth parses a YYYY-MM value into the first day of that month (UTC).
func ParseMonth(value string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse month %q: %w", value, err)
	}
	return t.UTC(), nil
}

// monthStart normalises a timestamp to the first day of its month (UTC).
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// monthsBetween counts months in the closed interval [start, end].
// Returns 0 when start is after end.
func monthsBetween(start, end time.Time) int {
	start = monthStart(start)
	end = monthStart(end)
	if start.After(end) {
		return 0
	}
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	return years*12 + months + 1
}
