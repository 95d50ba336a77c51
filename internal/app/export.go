package app

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"channel-metrics/internal/metrics"
)

// Export renders the aggregated series as CSV and/or PNG.
func (a *App) Export(opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	opts.MaxPoints = a.Config.ResolveMaxPoints(opts.MaxPoints)

	series := a.buildSeries()
	from, to := a.resolveRange(opts.From, opts.To)
	rows, _ := metrics.FilterAggregate(series, from, to, opts.Granularity)
	if len(rows) == 0 {
		a.Logger.Info().Msg("no rows found for export window")
		return nil
	}

	downsampled := downsampleRows(rows, opts.MaxPoints)
	a.Logger.Info().Int("total", len(rows)).Int("exported", len(downsampled)).Msg("exporting aggregated rows")

	if opts.CSVPath != "" {
		if err := writeRowsCSV(opts.CSVPath, downsampled); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeChartPNG(opts.PNGPath, downsampled, ChartLine); err != nil {
			return err
		}
	}

	return nil
}

func downsampleRows(rows []metrics.AggregatedRow, max int) []metrics.AggregatedRow {
	if max <= 0 || len(rows) <= max {
		return rows
	}

	result := make([]metrics.AggregatedRow, 0, max)
	step := float64(len(rows)-1) / float64(max-1)
	for i := 0; i < max; i++ {
		idx := int(math.Round(step * float64(i)))
		if idx >= len(rows) {
			idx = len(rows) - 1
		}
		result = append(result, rows[idx])
	}
	return result
}

func writeRowsCSV(path string, rows []metrics.AggregatedRow) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"bucket", "views", "watch_hours", "net_subscribers", "likes"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Bucket.Format("2006-01-02"),
			strconv.FormatInt(row.Views, 10),
			strconv.FormatInt(row.WatchHours, 10),
			strconv.FormatInt(row.NetSubscribers, 10),
			strconv.FormatInt(row.Likes, 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func writeChartPNG(path string, rows []metrics.AggregatedRow, kind ChartKind) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if kind == ChartBar {
		return buildBarChart(rows).Render(chart.PNG, file)
	}
	graph := buildTimeChart(rows, kind)
	return graph.Render(chart.PNG, file)
}

func buildTimeChart(rows []metrics.AggregatedRow, kind ChartKind) chart.Chart {
	x := make([]time.Time, len(rows))
	views := make([]float64, len(rows))
	watchHours := make([]float64, len(rows))
	net := make([]float64, len(rows))
	likes := make([]float64, len(rows))

	for i, row := range rows {
		x[i] = row.Bucket
		views[i] = float64(row.Views)
		watchHours[i] = float64(row.WatchHours)
		net[i] = float64(row.NetSubscribers)
		likes[i] = float64(row.Likes)
	}

	seriesStyle := func(index int) chart.Style {
		style := chart.Style{StrokeColor: chart.GetDefaultColor(index)}
		if kind == ChartArea {
			style.FillColor = chart.GetDefaultColor(index).WithAlpha(64)
		}
		return style
	}

	graph := chart.Chart{
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Views",
		},
		YAxisSecondary: chart.YAxis{
			Name: "Engagement",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Views",
				XValues: x,
				YValues: views,
				Style:   seriesStyle(0),
			},
			chart.TimeSeries{
				Name:    "Watch Hours",
				XValues: x,
				YValues: watchHours,
				YAxis:   chart.YAxisSecondary,
				Style:   seriesStyle(1),
			},
			chart.TimeSeries{
				Name:    "Net Subscribers",
				XValues: x,
				YValues: net,
				YAxis:   chart.YAxisSecondary,
				Style:   seriesStyle(2),
			},
			chart.TimeSeries{
				Name:    "Likes",
				XValues: x,
				YValues: likes,
				YAxis:   chart.YAxisSecondary,
				Style:   seriesStyle(3),
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}

// buildBarChart draws one bar of views per bucket; go-chart bar charts are
// single-series.
func buildBarChart(rows []metrics.AggregatedRow) chart.BarChart {
	bars := make([]chart.Value, len(rows))
	for i, row := range rows {
		bars[i] = chart.Value{
			Value: float64(row.Views),
			Label: row.Bucket.Format("2006-01"),
		}
	}

	return chart.BarChart{
		Title:    "Views",
		Width:    1280,
		Height:   720,
		BarWidth: 40,
		Bars:     bars,
	}
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
