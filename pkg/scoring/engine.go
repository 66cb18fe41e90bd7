package scoring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// RecordStore is the slice of the metrics store the engine needs.
type RecordStore interface {
	Upsert(ctx context.Context, rec health.MetricRecord) error
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (health.MetricRecord, bool, error)
}

// Engine orchestrates one scoring request: load the record, compute score and
// feedback via the configured calculator, persist them back into the record,
// and return the composed result.
//
// Exactly one upsert happens on the success path; none on any failure path.
type Engine struct {
	store RecordStore
	calc  Calculator
}

// NewEngine creates a scoring engine over the given store and calculator.
func NewEngine(store RecordStore, calc Calculator) *Engine {
	return &Engine{store: store, calc: calc}
}

// Execute runs the scoring pipeline for one (user, date).
//
// Failure modes, in pipeline order:
//   - no record for the pair: *health.NotFoundError, nothing written
//   - calculator failure: *health.CalculatorError, nothing written
//   - write failure: *health.PersistenceError; the computed score is
//     discarded and the caller must re-run the request
func (e *Engine) Execute(ctx context.Context, userID string, date time.Time) (*ScoreResult, error) {
	rec, ok, err := e.store.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &health.NotFoundError{UserID: userID, Date: date.Format(health.DateFormat)}
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var (
		score     int
		feedback  string
		breakdown []FactorResult
	)
	if h, ok := e.calc.(*HeuristicCalculator); ok {
		// Score, feedback, and the breakdown all derive from one pass over
		// the rule table.
		breakdown = h.Breakdown(rec)
		score = sumScore(breakdown)
		feedback = joinFeedback(breakdown)
	} else {
		score, err = e.calc.CalculateScore(ctx, rec)
		if err != nil {
			return nil, &health.CalculatorError{Err: err}
		}
		feedback, err = e.calc.GenerateFeedback(ctx, rec, score)
		if err != nil {
			return nil, &health.CalculatorError{Err: err}
		}
	}

	rec.Score = &score
	rec.Feedback = feedback
	if err := e.store.Upsert(ctx, rec); err != nil {
		return nil, &health.PersistenceError{Err: err}
	}

	return &ScoreResult{
		ID:         uuid.New().String(),
		UserID:     userID,
		Date:       rec.DateString(),
		Score:      score,
		Feedback:   feedback,
		Breakdown:  breakdown,
		Metrics:    rec,
		ComputedAt: time.Now().UTC(),
	}, nil
}
