package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "investor-subscriptions",
	Short: "Foreclosure-data subscriptions and access gating for investors",
	Long: "Investor subscriptions service: sells MONTHLY, QUARTERLY and YEARLY foreclosure-data plans, " +
		"answers access-gate checks and keeps investor subscription flags current.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
