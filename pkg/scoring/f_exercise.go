package scoring

import "github.com/vitalscope/vitalscope/pkg/health"

// ExerciseFactor awards up to 25 points for daily exercise minutes.
type ExerciseFactor struct{}

func (f *ExerciseFactor) Key() string  { return "exercise" }
func (f *ExerciseFactor) Name() string { return "Exercise" }

func (f *ExerciseFactor) Evaluate(rec health.MetricRecord) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name(), Max: 25}

	m := rec.ExerciseMinutes
	switch {
	case m >= 30 && m <= 60:
		result.Points = 25
	case m >= 20 && m < 90:
		result.Points = 15
	case m > 0:
		result.Points = 5
	}

	if result.Points == result.Max {
		result.Feedback = "Your exercise routine is in the sweet spot."
	} else {
		result.Feedback = "Try to get more exercise; 30-60 minutes a day is ideal."
	}

	return result
}
