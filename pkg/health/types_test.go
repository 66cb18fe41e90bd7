package health_test

import (
	"testing"
	"time"

	"github.com/vitalscope/vitalscope/pkg/health"
)

func validRecord() health.MetricRecord {
	return health.MetricRecord{
		UserID:          "alice",
		Date:            time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		SleepHours:      8,
		Steps:           9000,
		WaterLitres:     2.5,
		ExerciseMinutes: 45,
		Calories:        2000,
	}
}

func TestValidateAcceptsInDomainFields(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	// Boundary values are in-domain
	rec := validRecord()
	rec.SleepHours = 24
	rec.Steps = 0
	rec.WaterLitres = 0
	rec.ExerciseMinutes = 0
	rec.Calories = 0
	if err := rec.Validate(); err != nil {
		t.Errorf("Validate() boundary record = %v, want nil", err)
	}
}

func TestValidateRejectsOutOfDomainFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*health.MetricRecord)
		field   string
	}{
		{"empty user", func(r *health.MetricRecord) { r.UserID = "" }, "userId"},
		{"zero date", func(r *health.MetricRecord) { r.Date = time.Time{} }, "date"},
		{"negative sleep", func(r *health.MetricRecord) { r.SleepHours = -0.5 }, "sleepHours"},
		{"sleep above 24", func(r *health.MetricRecord) { r.SleepHours = 25 }, "sleepHours"},
		{"negative steps", func(r *health.MetricRecord) { r.Steps = -1 }, "steps"},
		{"negative water", func(r *health.MetricRecord) { r.WaterLitres = -1 }, "waterLitres"},
		{"negative exercise", func(r *health.MetricRecord) { r.ExerciseMinutes = -10 }, "exerciseMinutes"},
		{"negative calories", func(r *health.MetricRecord) { r.Calories = -100 }, "calories"},
		{"score above 100", func(r *health.MetricRecord) { v := 101; r.Score = &v }, "score"},
		{"negative score", func(r *health.MetricRecord) { v := -1; r.Score = &v }, "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			err := rec.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			ve, ok := err.(*health.ValidationError)
			if !ok {
				t.Fatalf("Validate() = %T, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestNotFoundErrorMessageContainsDate(t *testing.T) {
	err := &health.NotFoundError{UserID: "alice", Date: "2026-08-30"}
	want := "No health metrics found for 2026-08-30. Please enter your daily health data first."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCalculatorErrorHidesInternals(t *testing.T) {
	cause := &health.ValidationError{Field: "x", Message: "secret internal detail"}
	err := &health.CalculatorError{Err: cause}
	if got := err.Error(); got != "Failed to generate health score due to an external service error. Please try again later." {
		t.Errorf("Error() = %q leaks internals", got)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should expose the cause")
	}
}

func TestParseDate(t *testing.T) {
	d, err := health.ParseDate("2026-08-30")
	if err != nil {
		t.Fatalf("ParseDate() error: %v", err)
	}
	if d.Format(health.DateFormat) != "2026-08-30" {
		t.Errorf("round trip = %s", d.Format(health.DateFormat))
	}

	if _, err := health.ParseDate("30/08/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
