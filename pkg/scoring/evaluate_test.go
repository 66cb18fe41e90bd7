package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/vitalscope/vitalscope/pkg/health"
)

type countingFactor struct {
	inner Factor
	calls *int
}

func (f countingFactor) Key() string  { return f.inner.Key() }
func (f countingFactor) Name() string { return f.inner.Name() }

func (f countingFactor) Evaluate(rec health.MetricRecord) FactorResult {
	*f.calls++
	return f.inner.Evaluate(rec)
}

type singleRecordStore struct {
	rec health.MetricRecord
}

func (s *singleRecordStore) Upsert(ctx context.Context, rec health.MetricRecord) error {
	s.rec = rec
	return nil
}

func (s *singleRecordStore) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (health.MetricRecord, bool, error) {
	return s.rec, true, nil
}

func TestExecuteEvaluatesEachFactorOnce(t *testing.T) {
	calls := 0
	calc := &HeuristicCalculator{}
	for _, f := range DefaultFactors() {
		calc.factors = append(calc.factors, countingFactor{inner: f, calls: &calls})
	}

	st := &singleRecordStore{rec: health.MetricRecord{
		UserID:          "alice",
		Date:            time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		SleepHours:      8,
		Steps:           9000,
		WaterLitres:     2.5,
		ExerciseMinutes: 45,
		Calories:        2000,
	}}

	result, err := NewEngine(st, calc).Execute(context.Background(), "alice", st.rec.Date)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Score != 100 || len(result.Breakdown) != len(calc.factors) {
		t.Fatalf("Execute() = score %d, %d factors", result.Score, len(result.Breakdown))
	}
	if calls != len(calc.factors) {
		t.Errorf("factors evaluated %d times for %d factors, want one pass", calls, len(calc.factors))
	}
}
