package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vitalscope/vitalscope/pkg/render"
)

func newHistoryCmd() *cobra.Command {
	var (
		cfgPath   string
		user      string
		timeRange string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "history <metric>",
		Short: "Show a metric's history inside a time window",
		Long: `Shows one metric dimension (sleep, water, exercise, or calories) over a
named window: day, week, month, or year.`,
		Args: cobra.ExactArgs(1),
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

			points, err := svc.QueryHistory(ctx, userID, args[0], timeRange)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				return (&render.JSONRenderer{}).Render(os.Stdout, points)
			}
			return (&render.TerminalRenderer{}).RenderHistory(os.Stdout, args[0], points)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&user, "user", "", "User to query (default: VITALSCOPE_USER)")
	cmd.Flags().StringVar(&timeRange, "range", "week", "Time window: day, week, month, or year")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
