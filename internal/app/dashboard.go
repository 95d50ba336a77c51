package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"channel-metrics/internal/metrics"
)

// Dashboard renders the metric panels for the selected range and granularity,
// plus an optional PNG chart of the aggregated series.
func (a *App) Dashboard(opts DashboardOptions) error {
	series := a.buildSeries()

	from, to := a.resolveRange(opts.From, opts.To)
	rows, growth := metrics.FilterAggregate(series, from, to, opts.Granularity)
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "no data in selected range")
		return nil
	}

	writePanels(os.Stdout, rows, growth)

	if opts.PNGPath != "" {
		if err := writeChartPNG(opts.PNGPath, rows, opts.Chart); err != nil {
			return err
		}
		a.Logger.Info().Str("path", opts.PNGPath).Int("buckets", len(rows)).Msg("chart written")
	}

	return nil
}

// panel is one dashboard metric panel: the range total plus the growth delta
// between the two most recent buckets.
type panel struct {
	Label string
	Total int64
	Delta int64
	Prev  int64
}

func buildPanels(rows []metrics.AggregatedRow, growth metrics.Growth) []panel {
	var views, watchHours, net, likes panel
	views.Label = "Total Views"
	watchHours.Label = "Total Watch Hours"
	net.Label = "Net Subscribers"
	likes.Label = "Total Likes"

	for _, row := range rows {
		views.Total += row.Views
		watchHours.Total += row.WatchHours
		net.Total += row.NetSubscribers
		likes.Total += row.Likes
	}

	views.Delta = growth.Views
	watchHours.Delta = growth.WatchHours
	net.Delta = growth.NetSubscribers
	likes.Delta = growth.Likes

	if len(rows) >= 2 {
		prev := rows[len(rows)-2]
		views.Prev = prev.Views
		watchHours.Prev = prev.WatchHours
		net.Prev = prev.NetSubscribers
		likes.Prev = prev.Likes
	}

	return []panel{views, watchHours, net, likes}
}

func writePanels(out io.Writer, rows []metrics.AggregatedRow, growth metrics.Growth) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Metric\tTotal\tGrowth\tChange")

	for _, p := range buildPanels(rows, growth) {
		fmt.Fprintf(writer, "%s\t%d\t%+d\t%s\n", p.Label, p.Total, p.Delta, changePct(p.Delta, p.Prev))
	}

	writer.Flush()
}

// changePct formats the growth delta as a percentage of the previous bucket.
func changePct(delta, prev int64) string {
	if prev == 0 {
		return "-"
	}
	pct := decimal.NewFromInt(delta).
		Div(decimal.NewFromInt(prev)).
		Mul(decimal.NewFromInt(100))
	return pct.StringFixed(1) + "%"
}
