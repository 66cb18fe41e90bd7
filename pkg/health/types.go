// Package health defines the core daily health metric record model and the
// error taxonomy shared by the store, the scoring engine, and the history
// aggregator.
package health

import (
	"fmt"
	"time"
)

// DateFormat is the canonical ISO-8601 calendar date layout used for record
// keys and persisted dates.
const DateFormat = "2006-01-02"

// MetricRecord is one user's raw health metrics for one calendar date.
// The (UserID, Date) pair is the primary key; a record is mutated in place
// on resubmission, never duplicated.
type MetricRecord struct {
	UserID          string
	Date            time.Time // calendar date; time-of-day is ignored
	SleepHours      float64   // [0, 24]
	Steps           int       // >= 0
	WaterLitres     float64   // >= 0
	ExerciseMinutes float64   // >= 0
	Calories        int       // >= 0

	// Score and Feedback are set once a daily score has been computed.
	Score    *int // [0, 100] when present
	Feedback string
}

// DateString returns the record's date in the canonical layout.
func (r MetricRecord) DateString() string {
	return r.Date.Format(DateFormat)
}

// SameDay reports whether the record belongs to the given calendar date.
func (r MetricRecord) SameDay(date time.Time) bool {
	ry, rm, rd := r.Date.Date()
	y, m, d := date.Date()
	return ry == y && rm == m && rd == d
}

// ParseDate parses a calendar date in the canonical layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// Validate checks every field against its domain independently. The first
// violation is returned as a *ValidationError; a nil result means the record
// is valid. There are no cross-field invariants.
func (r MetricRecord) Validate() error {
	if r.UserID == "" {
		return &ValidationError{Field: "userId", Message: "must not be empty"}
	}
	if r.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "must be set"}
	}
	if r.SleepHours < 0 || r.SleepHours > 24 {
		return &ValidationError{Field: "sleepHours", Message: fmt.Sprintf("%v is outside [0, 24]", r.SleepHours)}
	}
	if r.Steps < 0 {
		return &ValidationError{Field: "steps", Message: fmt.Sprintf("%d is negative", r.Steps)}
	}
	if r.WaterLitres < 0 {
		return &ValidationError{Field: "waterLitres", Message: fmt.Sprintf("%v is negative", r.WaterLitres)}
	}
	if r.ExerciseMinutes < 0 {
		return &ValidationError{Field: "exerciseMinutes", Message: fmt.Sprintf("%v is negative", r.ExerciseMinutes)}
	}
	if r.Calories < 0 {
		return &ValidationError{Field: "calories", Message: fmt.Sprintf("%d is negative", r.Calories)}
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 100) {
		return &ValidationError{Field: "score", Message: fmt.Sprintf("%d is outside [0, 100]", *r.Score)}
	}
	return nil
}
