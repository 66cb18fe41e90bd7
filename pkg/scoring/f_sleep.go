package scoring

import "github.com/vitalscope/vitalscope/pkg/health"

// SleepFactor awards up to 25 points for sleep duration. Sleep has a
// two-sided optimal range, so the warning names the direction.
type SleepFactor struct{}

func (f *SleepFactor) Key() string  { return "sleep" }
func (f *SleepFactor) Name() string { return "Sleep" }

func (f *SleepFactor) Evaluate(rec health.MetricRecord) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name(), Max: 25}

	h := rec.SleepHours
	switch {
	case h >= 7 && h <= 9:
		result.Points = 25
	case h >= 6 && h < 10:
		result.Points = 15
	case h > 0:
		result.Points = 5
	}

	switch {
	case result.Points == result.Max:
		result.Feedback = "You're getting a healthy amount of sleep."
	case h > 9:
		result.Feedback = "You may be sleeping too much; aim for 7-9 hours."
	default:
		result.Feedback = "You're not sleeping enough; aim for 7-9 hours."
	}

	return result
}
