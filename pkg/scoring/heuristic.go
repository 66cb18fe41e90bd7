package scoring

import (
	"context"
	"strings"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// DefaultFactors returns the five factors in canonical order: sleep,
// exercise, calories, water, steps. Feedback is assembled in this order.
func DefaultFactors() []Factor {
	return []Factor{
		&SleepFactor{},
		&ExerciseFactor{},
		&CaloriesFactor{},
		&WaterFactor{},
		&StepsFactor{},
	}
}

// HeuristicCalculator is the deterministic, rule-table-based scorer. It does
// no I/O and never fails.
//
// The factor maxima sum to 120 but the aggregate is clamped to 100. The clamp
// is intentional: a balanced profile reaches 100 without maxing every factor,
// while a single maxed metric cannot carry the score.
type HeuristicCalculator struct {
	factors []Factor
}

// NewHeuristicCalculator creates a heuristic calculator with the default
// factor set.
func NewHeuristicCalculator() *HeuristicCalculator {
	return &HeuristicCalculator{factors: DefaultFactors()}
}

// Breakdown evaluates every factor in order.
func (c *HeuristicCalculator) Breakdown(rec health.MetricRecord) []FactorResult {
	results := make([]FactorResult, 0, len(c.factors))
	for _, f := range c.factors {
		results = append(results, f.Evaluate(rec))
	}
	return results
}

// CalculateScore sums the factor contributions and clamps the total to 100.
func (c *HeuristicCalculator) CalculateScore(ctx context.Context, rec health.MetricRecord) (int, error) {
	return sumScore(c.Breakdown(rec)), nil
}

// GenerateFeedback concatenates each factor's sentence in factor order.
func (c *HeuristicCalculator) GenerateFeedback(ctx context.Context, rec health.MetricRecord, score int) (string, error) {
	return joinFeedback(c.Breakdown(rec)), nil
}

func sumScore(breakdown []FactorResult) int {
	total := 0
	for _, fr := range breakdown {
		total += fr.Points
	}
	if total > MaxScore {
		total = MaxScore
	}
	return total
}

func joinFeedback(breakdown []FactorResult) string {
	sentences := make([]string, 0, len(breakdown))
	for _, fr := range breakdown {
		sentences = append(sentences, fr.Feedback)
	}
	return strings.Join(sentences, " ")
}
