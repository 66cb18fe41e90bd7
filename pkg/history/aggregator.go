// Package history answers time-windowed queries over a user's stored metric
// records: per-metric series for charting and summary statistics for
// narrative trend text.
package history

import (
	"context"
	"strings"
	"time"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// RecordLister is the slice of the metrics store the aggregator needs.
type RecordLister interface {
	ListByUser(ctx context.Context, userID string) ([]health.MetricRecord, error)
}

// Point is one (date, value) pair of a metric series. Points come back in
// the store's natural iteration order; callers needing chronological order
// must sort.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Aggregator filters a user's records by a named time window and projects
// them onto a single metric dimension.
type Aggregator struct {
	store RecordLister
	now   func() time.Time
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(store RecordLister) *Aggregator {
	return &Aggregator{store: store, now: time.Now}
}

// Cutoff maps a named time range onto the earliest date still inside the
// window. Unrecognized ranges fall back to a 20-year window, effectively
// "all records" — a deliberate default-rather-than-error policy.
func Cutoff(now time.Time, timeRange string) time.Time {
	switch strings.ToLower(strings.TrimSpace(timeRange)) {
	case "day":
		return now.AddDate(0, 0, -1)
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, -1, 0)
	case "year":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(-20, 0, 0)
	}
}

// FetchHistory returns the user's series for one metric inside the window.
// Records dated exactly at the cutoff are kept. An unknown metric type fails
// with *health.InvalidMetricTypeError.
func (a *Aggregator) FetchHistory(ctx context.Context, metricType, timeRange, userID string) ([]Point, error) {
	project, ok := projector(metricType)
	if !ok {
		return nil, &health.InvalidMetricTypeError{Metric: metricType}
	}

	recs, err := a.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := Cutoff(a.now(), timeRange)
	var points []Point
	for _, r := range recs {
		if r.Date.Before(cutoff) {
			continue
		}
		points = append(points, Point{Date: r.DateString(), Value: project(r)})
	}
	return points, nil
}

// projector resolves a metric dimension name, case-insensitively and with
// the accepted synonyms, to a field extractor.
func projector(metricType string) (func(health.MetricRecord) float64, bool) {
	switch strings.ToLower(strings.TrimSpace(metricType)) {
	case "sleep", "sleephours":
		return func(r health.MetricRecord) float64 { return r.SleepHours }, true
	case "water", "waterintake":
		return func(r health.MetricRecord) float64 { return r.WaterLitres }, true
	case "exercise", "exerciseminutes":
		return func(r health.MetricRecord) float64 { return r.ExerciseMinutes }, true
	case "calories":
		return func(r health.MetricRecord) float64 { return float64(r.Calories) }, true
	}
	return nil, false
}

func (a *Aggregator) windowed(ctx context.Context, userID, timeRange string) ([]health.MetricRecord, error) {
	recs, err := a.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	cutoff := Cutoff(a.now(), timeRange)
	var kept []health.MetricRecord
	for _, r := range recs {
		if !r.Date.Before(cutoff) {
			kept = append(kept, r)
		}
	}
	return kept, nil
}
