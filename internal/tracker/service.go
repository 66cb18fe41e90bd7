// Package tracker ties the record store, score engine, history aggregator,
// and session provider together behind the operations the surrounding
// application calls: record metrics, compute the daily score, query history,
// and fetch insights.
package tracker

import (
	"context"
	"time"

	"github.com/vitalscope/vitalscope/internal/store"
	"github.com/vitalscope/vitalscope/pkg/health"
	"github.com/vitalscope/vitalscope/pkg/history"
	"github.com/vitalscope/vitalscope/pkg/scoring"
)

// Service is the core facade. Construct one per process and inject the store
// explicitly; there is no process-wide instance.
type Service struct {
	store  store.Store
	engine *scoring.Engine
	agg    *history.Aggregator
}

// NewService creates the core service over a store and a calculator.
func NewService(st store.Store, calc scoring.Calculator) *Service {
	return &Service{
		store:  st,
		engine: scoring.NewEngine(st, calc),
		agg:    history.NewAggregator(st),
	}
}

// RecordMetrics validates a day's raw metrics and upserts them. A
// resubmission replaces the stored record wholesale; a previously computed
// score would describe metrics that no longer exist, so it is cleared.
func (s *Service) RecordMetrics(ctx context.Context, rec health.MetricRecord) error {
	rec.Score = nil
	rec.Feedback = ""
	if err := rec.Validate(); err != nil {
		return err
	}
	return s.store.Upsert(ctx, rec)
}

// ComputeDailyScore runs the scoring pipeline for one (user, date).
func (s *Service) ComputeDailyScore(ctx context.Context, userID string, date time.Time) (*scoring.ScoreResult, error) {
	return s.engine.Execute(ctx, userID, date)
}

// QueryHistory returns a user's series for one metric inside a named window.
func (s *Service) QueryHistory(ctx context.Context, userID, metricType, timeRange string) ([]history.Point, error) {
	return s.agg.FetchHistory(ctx, metricType, timeRange, userID)
}

// Insights returns the trend report for a user, or nil when the window holds
// fewer than three records.
func (s *Service) Insights(ctx context.Context, userID, timeRange string) (*history.TrendReport, error) {
	return s.agg.Trends(ctx, userID, timeRange)
}

// CurrentUsername resolves the acting user via the store's session
// collaborator.
func (s *Service) CurrentUsername() (string, bool) {
	return s.store.CurrentUsername()
}
