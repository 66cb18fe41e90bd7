package scoring

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// fallbackScore is returned when no integer can be parsed out of the
// service's response.
const fallbackScore = 50

// TextGenerator is the remote text-completion collaborator consumed by the
// ExternalCalculator. Transport, retries, and credentials are owned by the
// implementation, not by this package.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExternalCalculator delegates scoring to a remote text-generation service.
// It formats the metrics as a natural-language prompt, parses the first
// integer found in the response as the score, and returns the raw response
// text as feedback. Slow and fallible; selected by configuration, never by
// the engine itself.
type ExternalCalculator struct {
	gen TextGenerator

	// One service call serves both the score and the feedback for the same
	// metrics. The memo is keyed on the full prompt, which encodes every
	// metric value: re-recorded metrics build a different prompt and get a
	// fresh call. Guarded for the concurrent daemon handlers.
	mu           sync.Mutex
	lastPrompt   string
	lastResponse string
}

// NewExternalCalculator creates a calculator backed by the given text
// generator.
func NewExternalCalculator(gen TextGenerator) *ExternalCalculator {
	return &ExternalCalculator{gen: gen}
}

func buildPrompt(rec health.MetricRecord) string {
	return fmt.Sprintf(
		"Rate the following daily health metrics with a single wellness score from 0 to 100, "+
			"then give short, actionable feedback.\n"+
			"Sleep: %.1f hours\nExercise: %.0f minutes\nCalories: %d kcal\nWater: %.1f litres\nSteps: %d\n"+
			"Start your answer with the numeric score.",
		rec.SleepHours, rec.ExerciseMinutes, rec.Calories, rec.WaterLitres, rec.Steps,
	)
}

func (c *ExternalCalculator) response(ctx context.Context, rec health.MetricRecord) (string, error) {
	prompt := buildPrompt(rec)

	c.mu.Lock()
	if prompt == c.lastPrompt && c.lastResponse != "" {
		text := c.lastResponse
		c.mu.Unlock()
		return text, nil
	}
	c.mu.Unlock()

	// Not held across the network call; a concurrent duplicate costs one
	// extra call at worst.
	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("text generation: %w", err)
	}

	c.mu.Lock()
	c.lastPrompt, c.lastResponse = prompt, text
	c.mu.Unlock()
	return text, nil
}

// CalculateScore parses the first integer in the response as the score,
// falling back to 50 when none is found, and clamping into [0, 100].
func (c *ExternalCalculator) CalculateScore(ctx context.Context, rec health.MetricRecord) (int, error) {
	text, err := c.response(ctx, rec)
	if err != nil {
		return 0, err
	}
	return parseScore(text), nil
}

// GenerateFeedback returns the raw response text.
func (c *ExternalCalculator) GenerateFeedback(ctx context.Context, rec health.MetricRecord, score int) (string, error) {
	text, err := c.response(ctx, rec)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// parseScore extracts the first run of digits from the response. Responses
// like "I'd rate this day 72 out of 100" parse as 72.
func parseScore(text string) int {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return clampScore(text[start:i])
		}
	}
	if start >= 0 {
		return clampScore(text[start:])
	}
	return fallbackScore
}

func clampScore(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return fallbackScore
	}
	if n > MaxScore {
		return MaxScore
	}
	if n < 0 {
		return 0
	}
	return n
}
