package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"channel-metrics/internal/metrics"
)

// Show prints the most recent raw monthly rows.
func (a *App) Show(opts ShowOptions) error {
	series := a.buildSeries()
	if len(series) == 0 {
		fmt.Fprintln(os.Stdout, "no rows generated")
		return nil
	}

	start := len(series) - opts.Limit
	if start < 0 {
		start = 0
	}

	writeRows(os.Stdout, series[start:])
	return nil
}

func writeRows(out io.Writer, rows metrics.Series) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Month\tGained\tLost\tNet\tViews\tWatch Hours\tLikes\tShares\tComments")

	for _, row := range rows {
		fmt.Fprintf(
			writer,
			"%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			row.Date.Format(metrics.MonthLayout),
			row.SubscribersGained,
			row.SubscribersLost,
			row.NetSubscribers,
			row.Views,
			row.WatchHours,
			row.Likes,
			row.Shares,
			row.Comments,
		)
	}

	writer.Flush()
}
