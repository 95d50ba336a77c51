package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"channel-metrics/internal/app"
	"channel-metrics/internal/metrics"
)

var (
	exportFrom        string
	exportTo          string
	exportGranularity string
	exportPNGPath     string
	exportCSVPath     string
	exportMaxPoints   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aggregated series as CSV and/or PNG chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := app.ExportOptions{
			PNGPath:   exportPNGPath,
			CSVPath:   exportCSVPath,
			MaxPoints: exportMaxPoints,
		}

		parsed, err := metrics.ParseGranularity(exportGranularity)
		if err != nil {
			return fmt.Errorf("invalid --granularity value: %w", err)
		}
		opts.Granularity = parsed

		if opts.From, err = parseMonthFlag("--from", exportFrom); err != nil {
			return err
		}
		if opts.To, err = parseMonthFlag("--to", exportTo); err != nil {
			return err
		}

		return getApp().Export(opts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Start month (YYYY-MM, inclusive)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "End month (YYYY-MM, inclusive)")
	exportCmd.Flags().StringVar(&exportGranularity, "granularity", "monthly", "Time granularity: daily, weekly, monthly, or quarterly")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write PNG chart")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write CSV data")
	exportCmd.Flags().IntVar(&exportMaxPoints, "max-points", 0, "Maximum data points to export (defaults to config)")
}
