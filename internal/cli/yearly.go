package cli

import (
	"github.com/spf13/cobra"
)

var yearlyCmd = &cobra.Command{
	Use:   "yearly",
	Short: "Display a per-year summary table with metric sparklines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Yearly()
	},
}
