// Package scoring computes a normalized 0-100 daily wellness score from a
// day's health metrics and generates the accompanying feedback text.
package scoring

import (
	"context"
	"time"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// MaxScore is the cap applied to the aggregate daily score.
const MaxScore = 100

// Calculator turns a day's metrics into a score and feedback text. Both
// methods may fail when an external dependency is unavailable; callers must
// not assume success.
type Calculator interface {
	// CalculateScore computes the daily score in [0, 100].
	CalculateScore(ctx context.Context, rec health.MetricRecord) (int, error)
	// GenerateFeedback produces the feedback text for the given metrics and
	// score.
	GenerateFeedback(ctx context.Context, rec health.MetricRecord, score int) (string, error)
}

// ScoreResult is the composed output of one scoring request. It is returned
// to the caller; the score and feedback are also written back into the
// matching stored record.
type ScoreResult struct {
	ID         string              `json:"id"`
	UserID     string              `json:"user_id"`
	Date       string              `json:"date"`
	Score      int                 `json:"score"`
	Feedback   string              `json:"feedback"`
	Breakdown  []FactorResult      `json:"breakdown,omitempty"` // heuristic runs only
	Metrics    health.MetricRecord `json:"-"`
	ComputedAt time.Time           `json:"computed_at"`
}

// FactorResult is the output of a single scoring factor.
type FactorResult struct {
	Key      string `json:"key"`      // machine key: "sleep"
	Name     string `json:"name"`     // human name: "Sleep"
	Points   int    `json:"points"`   // contribution before the aggregate cap
	Max      int    `json:"max"`      // full marks for this factor
	Feedback string `json:"feedback"` // one fixed sentence
}

// Factor is the interface all heuristic scoring factors implement. Bands are
// evaluated top to bottom; the first match wins.
type Factor interface {
	// Key returns the machine-readable factor identifier.
	Key() string
	// Name returns the human-readable factor name.
	Name() string
	// Evaluate computes the factor's contribution for a day's metrics.
	Evaluate(rec health.MetricRecord) FactorResult
}
