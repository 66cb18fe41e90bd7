package history

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// minTrendRecords is the minimum number of records a window must contain
// before trend text is produced.
const minTrendRecords = 3

// Averages holds the arithmetic means of each metric over the filtered set.
type Averages struct {
	SleepHours      float64 `json:"sleep_hours"`
	WaterLitres     float64 `json:"water_litres"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	Calories        float64 `json:"calories"`
	Steps           float64 `json:"steps"`
}

// FieldTrend describes the directional change of one metric between the
// oldest and newest record in the window.
type FieldTrend struct {
	Field     string  `json:"field"`
	Direction string  `json:"direction"` // "improving" or "needs attention"
	Oldest    float64 `json:"oldest"`
	Newest    float64 `json:"newest"`
}

// TrendReport is the advisory summary behind the insights view. It is not a
// scored output; there is no correctness invariant beyond the averages being
// arithmetic means of the filtered set.
type TrendReport struct {
	UserID   string       `json:"user_id"`
	Days     int          `json:"days"`
	Averages Averages     `json:"averages"`
	Trends   []FieldTrend `json:"trends"`
}

// Trends computes the trend report for a user over a named time window.
// Returns nil with no error when the window holds fewer than three records;
// there is not enough data to call anything a trend.
func (a *Aggregator) Trends(ctx context.Context, userID, timeRange string) (*TrendReport, error) {
	recs, err := a.windowed(ctx, userID, timeRange)
	if err != nil {
		return nil, err
	}
	if len(recs) < minTrendRecords {
		return nil, nil
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
	oldest, newest := recs[0], recs[len(recs)-1]

	report := &TrendReport{UserID: userID, Days: len(recs)}
	n := float64(len(recs))
	for _, r := range recs {
		report.Averages.SleepHours += r.SleepHours / n
		report.Averages.WaterLitres += r.WaterLitres / n
		report.Averages.ExerciseMinutes += r.ExerciseMinutes / n
		report.Averages.Calories += float64(r.Calories) / n
		report.Averages.Steps += float64(r.Steps) / n
	}

	report.Trends = []FieldTrend{
		moreIsBetter("sleep", oldest.SleepHours, newest.SleepHours),
		moreIsBetter("exercise", oldest.ExerciseMinutes, newest.ExerciseMinutes),
		closerIsBetter("calories", float64(oldest.Calories), float64(newest.Calories), 2000),
		moreIsBetter("water", oldest.WaterLitres, newest.WaterLitres),
		moreIsBetter("steps", float64(oldest.Steps), float64(newest.Steps)),
	}
	return report, nil
}

func moreIsBetter(field string, oldest, newest float64) FieldTrend {
	t := FieldTrend{Field: field, Oldest: oldest, Newest: newest, Direction: "improving"}
	if newest < oldest {
		t.Direction = "needs attention"
	}
	return t
}

// closerIsBetter judges a two-sided metric by distance from its target.
func closerIsBetter(field string, oldest, newest, target float64) FieldTrend {
	t := FieldTrend{Field: field, Oldest: oldest, Newest: newest, Direction: "improving"}
	oldDist, newDist := oldest-target, newest-target
	if oldDist < 0 {
		oldDist = -oldDist
	}
	if newDist < 0 {
		newDist = -newDist
	}
	if newDist > oldDist {
		t.Direction = "needs attention"
	}
	return t
}

// Narrative renders the report as human-readable lines.
func (r *TrendReport) Narrative() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Over your last %d logged days you averaged %.1f hours of sleep, %.1f litres of water, %.0f minutes of exercise, %.0f calories, and %.0f steps.\n",
		r.Days, r.Averages.SleepHours, r.Averages.WaterLitres, r.Averages.ExerciseMinutes, r.Averages.Calories, r.Averages.Steps)
	for _, t := range r.Trends {
		fmt.Fprintf(&b, "%s: %s (%.1f -> %.1f)\n", title(t.Field), t.Direction, t.Oldest, t.Newest)
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
