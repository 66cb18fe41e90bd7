package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalscope/vitalscope/pkg/health"
	"github.com/vitalscope/vitalscope/pkg/render"
)

func newScoreCmd() *cobra.Command {
	var (
		cfgPath   string
		user      string
		dateStr   string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the daily wellness score",
		Long: `Loads the day's recorded metrics, computes a 0-100 wellness score with
feedback, and saves both back into the record.`,
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

			date := time.Now()
			if dateStr != "" {
				date, err = health.ParseDate(dateStr)
				if err != nil {
					return err
				}
			}

			result, err := svc.ComputeDailyScore(ctx, userID, date)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				return (&render.JSONRenderer{}).Render(os.Stdout, result)
			}
			return (&render.TerminalRenderer{}).RenderScore(os.Stdout, result)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&user, "user", "", "User to score (default: VITALSCOPE_USER)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Calendar date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
