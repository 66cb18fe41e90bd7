package scoring

import "github.com/vitalscope/vitalscope/pkg/health"

// StepsFactor awards up to 20 points for step count.
type StepsFactor struct{}

func (f *StepsFactor) Key() string  { return "steps" }
func (f *StepsFactor) Name() string { return "Steps" }

func (f *StepsFactor) Evaluate(rec health.MetricRecord) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name(), Max: 20}

	s := rec.Steps
	switch {
	case s >= 8000:
		result.Points = 20
	case s >= 5000:
		result.Points = 15
	case s >= 3000:
		result.Points = 10
	case s > 0:
		result.Points = 5
	}

	if result.Points == result.Max {
		result.Feedback = "Great step count today."
	} else {
		result.Feedback = "Try to walk more; 8000 steps is a good target."
	}

	return result
}
