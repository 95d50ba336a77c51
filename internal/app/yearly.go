package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"channel-metrics/internal/metrics"
)

// Yearly renders one table row per calendar year: the year-end net subscriber
// figure plus a sparkline of each metric's monthly values.
func (a *App) Yearly() error {
	series := a.buildSeries()
	years := metrics.ReshapeByYear(series)
	if len(years) == 0 {
		fmt.Fprintln(os.Stdout, "no rows generated")
		return nil
	}

	writeYearlyTable(os.Stdout, years)
	return nil
}

func writeYearlyTable(out io.Writer, years []metrics.YearlyRow) {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := []string{"Year", "Net Subs"}
	for _, m := range metrics.Metrics() {
		header = append(header, m.String())
	}
	fmt.Fprintln(writer, strings.Join(header, "\t"))

	for _, year := range years {
		fields := []string{
			fmt.Sprintf("%d", year.Year),
			fmt.Sprintf("%d", year.NetSubscribers),
		}
		for _, m := range metrics.Metrics() {
			fields = append(fields, sparkline(year.MetricValues(m)))
		}
		fmt.Fprintln(writer, strings.Join(fields, "\t"))
	}

	writer.Flush()
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders a sequence of values as unicode block characters, scaled
// to the sequence's own min/max.
func sparkline(values []int64) string {
	if len(values) == 0 {
		return ""
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	builder := strings.Builder{}
	for _, v := range values {
		idx := 0
		if max > min {
			idx = int(int64(len(sparkTicks)-1) * (v - min) / (max - min))
		}
		builder.WriteRune(sparkTicks[idx])
	}
	return builder.String()
}
