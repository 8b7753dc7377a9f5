package main

import (
	"github.com/blaisecz/better-rest/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bedtime",
		Short:        "Estimate your ideal bedtime",
		Long:         "Estimate the ideal bedtime from the time you want to wake up, how long you want to sleep and how much coffee you drink.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newEstimateCmd(config.Load))
	return rootCmd
}
