package scoring

import "github.com/vitalscope/vitalscope/pkg/health"

// CaloriesFactor awards up to 25 points for calorie intake. Like sleep, the
// optimal range is two-sided, so the warning names the direction.
type CaloriesFactor struct{}

func (f *CaloriesFactor) Key() string  { return "calories" }
func (f *CaloriesFactor) Name() string { return "Calories" }

func (f *CaloriesFactor) Evaluate(rec health.MetricRecord) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name(), Max: 25}

	c := rec.Calories
	switch {
	case c >= 1500 && c <= 2500:
		result.Points = 25
	case c >= 1000 && c < 3000:
		result.Points = 15
	case c > 0:
		result.Points = 5
	}

	switch {
	case result.Points == result.Max:
		result.Feedback = "Your calorie intake looks balanced."
	case c > 2500:
		result.Feedback = "You're eating too many calories; aim for 1500-2500."
	default:
		result.Feedback = "You're eating too few calories; aim for 1500-2500."
	}

	return result
}
