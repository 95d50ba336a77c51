package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"channel-metrics/internal/config"
	"channel-metrics/internal/metrics"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// buildSeries runs the generator over the configured window. Every command
// recomputes the series from scratch; with a fixed seed the result is
// identical across runs.
func (a *App) buildSeries() metrics.Series {
	params := a.Config.GeneratorParams()
	series := metrics.Generate(params)
	a.Logger.Debug().
		Int64("seed", params.Seed).
		Int("rows", len(series)).
		Msg("generated synthetic series")
	return series
}

// resolveRange fills absent bounds with the configured generation window.
func (a *App) resolveRange(from, to *time.Time) (time.Time, time.Time) {
	start, end := a.Config.Window()
	if from != nil {
		start = from.UTC()
	}
	if to != nil {
		end = to.UTC()
	}
	return start, end
}

// ChartKind selects how the aggregated series is drawn. It affects rendering
// only, never the data.
type ChartKind int

const (
	ChartLine ChartKind = iota
	ChartArea
	ChartBar
)

// ParseChartKind maps a CLI/config value onto a ChartKind.
func ParseChartKind(value string) (ChartKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "line":
		return ChartLine, nil
	case "area":
		return ChartArea, nil
	case "bar":
		return ChartBar, nil
	default:
		return ChartLine, fmt.Errorf("unknown chart kind %q (want line, area, or bar)", value)
	}
}

// DashboardOptions configure the dashboard command.
type DashboardOptions struct {
	From        *time.Time
	To          *time.Time
	Granularity metrics.Granularity
	Chart       ChartKind
	PNGPath     string
}

// ExportOptions hold parameters for exporting the aggregated series.
type ExportOptions struct {
	From        *time.Time
	To          *time.Time
	Granularity metrics.Granularity
	PNGPath     string
	CSVPath     string
	MaxPoints   int
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Limit int
}
