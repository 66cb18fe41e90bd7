package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalscope/vitalscope/pkg/render"
)

func newInsightsCmd() *cobra.Command {
	var (
		cfgPath   string
		user      string
		timeRange string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize metric trends over a time window",
		Long: `Averages each metric over the window and compares the oldest and newest
records to describe where things are improving and where they need attention.
Needs at least three logged days.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			svc, err := newService(ctx, cfgPath)
			if err != nil {
				return err
			}

			userID, err := resolveUser(user, svc)
			if err != nil {
				return err
			}

			report, err := svc.Insights(ctx, userID, timeRange)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				return (&render.JSONRenderer{}).Render(os.Stdout, report)
			}
			return (&render.TerminalRenderer{}).RenderTrends(os.Stdout, report)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&user, "user", "", "User to query (default: VITALSCOPE_USER)")
	cmd.Flags().StringVar(&timeRange, "range", "month", "Time window: day, week, month, or year")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
