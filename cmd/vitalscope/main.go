// Package main provides the vitalscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitalscope",
		Short: "Daily health metrics tracking and wellness scoring",
		Long: `Vitalscope records daily health metrics (sleep, hydration, exercise,
calories, steps), computes a 0-100 wellness score with feedback, and
summarizes trends over time.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newRecordCmd(),
		newScoreCmd(),
		newHistoryCmd(),
		newInsightsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
