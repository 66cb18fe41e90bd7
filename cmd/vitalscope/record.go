package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vitalscope/vitalscope/pkg/health"
)

func newRecordCmd() *cobra.Command {
	var (
		cfgPath  string
		user     string
		dateStr  string
		sleep    float64
		steps    int
		water    float64
		exercise float64
		calories int
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a day's health metrics",
		Long: `Records sleep, steps, water, exercise, and calories for one calendar
date. Submitting again for the same date replaces the day's record.`,
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

			rec := health.MetricRecord{
				UserID:          userID,
				Date:            date,
				SleepHours:      sleep,
				Steps:           steps,
				WaterLitres:     water,
				ExerciseMinutes: exercise,
				Calories:        calories,
			}
			if err := svc.RecordMetrics(ctx, rec); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "Recorded metrics for %s on %s\n", userID, rec.DateString())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&user, "user", "", "User to record for (default: VITALSCOPE_USER)")
	cmd.Flags().StringVar(&dateStr, "date", "", "Calendar date, YYYY-MM-DD (default: today)")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "Hours slept")
	cmd.Flags().IntVar(&steps, "steps", 0, "Step count")
	cmd.Flags().Float64Var(&water, "water", 0, "Water drunk, litres")
	cmd.Flags().Float64Var(&exercise, "exercise", 0, "Exercise, minutes")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calories eaten")

	return cmd
}
