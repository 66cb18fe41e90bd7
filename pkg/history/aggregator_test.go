package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vitalscope/vitalscope/pkg/health"
)

type memLister struct {
	records []health.MetricRecord
	err     error
}

func (l *memLister) ListByUser(ctx context.Context, userID string) ([]health.MetricRecord, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []health.MetricRecord
	for _, r := range l.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testAggregator(records ...health.MetricRecord) *Aggregator {
	a := NewAggregator(&memLister{records: records})
	a.now = func() time.Time { return testNow }
	return a
}

func daysAgo(n int) time.Time {
	return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
}

func rec(userID string, date time.Time, sleep float64) health.MetricRecord {
	return health.MetricRecord{
		UserID:          userID,
		Date:            date,
		SleepHours:      sleep,
		Steps:           8000,
		WaterLitres:     2,
		ExerciseMinutes: 30,
		Calories:        2000,
	}
}

func TestFetchHistoryWindows(t *testing.T) {
	agg := testAggregator(
		rec("alice", daysAgo(0), 8),
		rec("alice", daysAgo(3), 7),
		rec("alice", daysAgo(10), 6),
		rec("alice", daysAgo(40), 5),
		rec("alice", daysAgo(400), 4),
		rec("bob", daysAgo(1), 9),
	)

	tests := []struct {
		timeRange string
		want      int
	}{
		{"day", 1},
		{"week", 2},
		{"month", 3},
		{"year", 4},
		{"", 5},       // unknown range keeps everything
		{"decade", 5}, // ditto
		{" Week ", 2}, // trimmed and case-insensitive
	}

	for _, tt := range tests {
		t.Run("range "+tt.timeRange, func(t *testing.T) {
			points, err := agg.FetchHistory(context.Background(), "sleep", tt.timeRange, "alice")
			if err != nil {
				t.Fatalf("FetchHistory() error: %v", err)
			}
			if len(points) != tt.want {
				t.Errorf("FetchHistory() returned %d points, want %d", len(points), tt.want)
			}
		})
	}
}

func TestFetchHistoryKeepsCutoffBoundary(t *testing.T) {
	// A record dated exactly at the cutoff is inside the window.
	cutoff := Cutoff(testNow, "week")
	agg := testAggregator(rec("alice", cutoff, 7))

	points, err := agg.FetchHistory(context.Background(), "sleep", "week", "alice")
	if err != nil {
		t.Fatalf("FetchHistory() error: %v", err)
	}
	if len(points) != 1 {
		t.Errorf("boundary record dropped; got %d points", len(points))
	}
}

func TestFetchHistoryMetricSynonyms(t *testing.T) {
	r := rec("alice", daysAgo(1), 7.5)
	r.WaterLitres = 2.5
	r.ExerciseMinutes = 45
	r.Calories = 1800
	agg := testAggregator(r)

	tests := []struct {
		metric string
		want   float64
	}{
		{"sleep", 7.5},
		{"sleepHours", 7.5},
		{"water", 2.5},
		{"waterIntake", 2.5},
		{"exercise", 45},
		{"exerciseMinutes", 45},
		{"calories", 1800},
		{"CALORIES", 1800},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			points, err := agg.FetchHistory(context.Background(), tt.metric, "week", "alice")
			if err != nil {
				t.Fatalf("FetchHistory(%q) error: %v", tt.metric, err)
			}
			if len(points) != 1 || points[0].Value != tt.want {
				t.Errorf("FetchHistory(%q) = %+v, want one point of %v", tt.metric, points, tt.want)
			}
		})
	}
}

func TestFetchHistoryRejectsUnknownMetric(t *testing.T) {
	agg := testAggregator(rec("alice", daysAgo(1), 7))

	for _, metric := range []string{"steps", "score", "heartRate", ""} {
		_, err := agg.FetchHistory(context.Background(), metric, "week", "alice")
		var ime *health.InvalidMetricTypeError
		if !errors.As(err, &ime) {
			t.Errorf("FetchHistory(%q) error = %T, want *InvalidMetricTypeError", metric, err)
		}
	}
}

func TestFetchHistoryStoreError(t *testing.T) {
	a := NewAggregator(&memLister{err: errors.New("backend down")})
	a.now = func() time.Time { return testNow }

	if _, err := a.FetchHistory(context.Background(), "sleep", "week", "alice"); err == nil {
		t.Error("FetchHistory() = nil error, want store failure")
	}
}

func TestTrendsNeedThreeRecords(t *testing.T) {
	agg := testAggregator(
		rec("alice", daysAgo(1), 8),
		rec("alice", daysAgo(2), 7),
	)

	report, err := agg.Trends(context.Background(), "alice", "month")
	if err != nil {
		t.Fatalf("Trends() error: %v", err)
	}
	if report != nil {
		t.Errorf("Trends() = %+v with only 2 records, want nil", report)
	}
}

func TestTrendsAveragesAndDirections(t *testing.T) {
	oldest := rec("alice", daysAgo(6), 6)
	oldest.WaterLitres = 1
	oldest.Calories = 3000
	middle := rec("alice", daysAgo(3), 7)
	newest := rec("alice", daysAgo(1), 8)
	newest.WaterLitres = 3
	newest.Calories = 2100
	newest.ExerciseMinutes = 20

	// Shuffled order; Trends sorts by date itself.
	agg := testAggregator(newest, oldest, middle)

	report, err := agg.Trends(context.Background(), "alice", "week")
	if err != nil {
		t.Fatalf("Trends() error: %v", err)
	}
	if report == nil {
		t.Fatal("Trends() = nil, want report")
	}
	if report.Days != 3 {
		t.Errorf("Days = %d, want 3", report.Days)
	}
	if got := report.Averages.SleepHours; got < 6.99 || got > 7.01 {
		t.Errorf("average sleep = %v, want 7", got)
	}

	directions := map[string]string{}
	for _, tr := range report.Trends {
		directions[tr.Field] = tr.Direction
	}
	if directions["sleep"] != "improving" {
		t.Errorf("sleep trend = %q, want improving", directions["sleep"])
	}
	if directions["water"] != "improving" {
		t.Errorf("water trend = %q, want improving", directions["water"])
	}
	// 2100 is closer to the 2000 target than 3000 was.
	if directions["calories"] != "improving" {
		t.Errorf("calories trend = %q, want improving", directions["calories"])
	}
	if directions["exercise"] != "needs attention" {
		t.Errorf("exercise trend = %q, want needs attention", directions["exercise"])
	}
}

func TestNarrativeMentionsEachField(t *testing.T) {
	agg := testAggregator(
		rec("alice", daysAgo(1), 8),
		rec("alice", daysAgo(2), 7),
		rec("alice", daysAgo(3), 6),
	)
	report, err := agg.Trends(context.Background(), "alice", "week")
	if err != nil || report == nil {
		t.Fatalf("Trends() = %v, %v", report, err)
	}

	text := report.Narrative()
	for _, want := range []string{"3 logged days", "Sleep:", "Exercise:", "Calories:", "Water:", "Steps:"} {
		if !strings.Contains(text, want) {
			t.Errorf("Narrative() missing %q:\n%s", want, text)
		}
	}
}
