package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"channel-metrics/internal/app"
	"channel-metrics/internal/metrics"
)

var (
	dashboardFrom        string
	dashboardTo          string
	dashboardGranularity string
	dashboardChart       string
	dashboardPNGPath     string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render metric panels and charts for a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := getApp()

		opts := app.DashboardOptions{
			PNGPath: dashboardPNGPath,
		}

		granularity := dashboardGranularity
		if granularity == "" {
			granularity = handle.Config.Dashboard.Granularity
		}
		parsed, err := metrics.ParseGranularity(granularity)
		if err != nil {
			return fmt.Errorf("invalid --granularity value: %w", err)
		}
		opts.Granularity = parsed

		chartKind := dashboardChart
		if chartKind == "" {
			chartKind = handle.Config.Dashboard.Chart
		}
		kind, err := app.ParseChartKind(chartKind)
		if err != nil {
			return fmt.Errorf("invalid --chart value: %w", err)
		}
		opts.Chart = kind

		if opts.From, err = parseMonthFlag("--from", dashboardFrom); err != nil {
			return err
		}
		if opts.To, err = parseMonthFlag("--to", dashboardTo); err != nil {
			return err
		}

		return handle.Dashboard(opts)
	},
}

func parseMonthFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	month, err := metrics.ParseMonth(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", name, err)
	}
	return &month, nil
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardFrom, "from", "", "Start month (YYYY-MM, inclusive; defaults to window start)")
	dashboardCmd.Flags().StringVar(&dashboardTo, "to", "", "End month (YYYY-MM, inclusive; defaults to window end)")
	dashboardCmd.Flags().StringVar(&dashboardGranularity, "granularity", "", "Time granularity: daily, weekly, monthly, or quarterly")
	dashboardCmd.Flags().StringVar(&dashboardChart, "chart", "", "Chart kind for --png output: line, area, or bar")
	dashboardCmd.Flags().StringVar(&dashboardPNGPath, "png", "", "Path to write PNG chart")
}
