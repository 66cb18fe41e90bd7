package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalscope/vitalscope/internal/session"
	"github.com/vitalscope/vitalscope/pkg/health"
)

// PostgresStore implements Store on a health_records table keyed by
// (user_id, date). Used by the hosted daemon, where whole-file rewrites
// would not survive multiple writers.
type PostgresStore struct {
	db       *sql.DB
	sessions session.Provider
}

// NewPostgresStore creates a Postgres-backed Store.
func NewPostgresStore(db *sql.DB, sessions session.Provider) *PostgresStore {
	return &PostgresStore{db: db, sessions: sessions}
}

// Upsert inserts or replaces the record for (rec.UserID, rec.Date).
func (s *PostgresStore) Upsert(ctx context.Context, rec health.MetricRecord) error {
	var score sql.NullInt64
	var feedback sql.NullString
	if rec.Score != nil {
		score = sql.NullInt64{Int64: int64(*rec.Score), Valid: true}
		feedback = sql.NullString{String: rec.Feedback, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO health_records
		   (id, user_id, date, sleep_hours, steps, water_litres, exercise_minutes, calories, score, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id, date) DO UPDATE
		   SET sleep_hours      = EXCLUDED.sleep_hours,
		       steps            = EXCLUDED.steps,
		       water_litres     = EXCLUDED.water_litres,
		       exercise_minutes = EXCLUDED.exercise_minutes,
		       calories         = EXCLUDED.calories,
		       score            = EXCLUDED.score,
		       feedback         = EXCLUDED.feedback,
		       updated_at       = now()`,
		uuid.New().String(), rec.UserID, rec.DateString(),
		rec.SleepHours, rec.Steps, rec.WaterLitres, rec.ExerciseMinutes, rec.Calories,
		score, feedback,
	)
	if err != nil {
		return fmt.Errorf("upsert health record %s/%s: %w", rec.UserID, rec.DateString(), err)
	}
	return nil
}

// GetByUserAndDate returns the record for the exact (userID, date) pair.
func (s *PostgresStore) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (health.MetricRecord, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, date, sleep_hours, steps, water_litres, exercise_minutes, calories, score, feedback
		 FROM health_records WHERE user_id = $1 AND date = $2`,
		userID, date.Format(health.DateFormat),
	)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return health.MetricRecord{}, false, nil
	}
	if err != nil {
		return health.MetricRecord{}, false, fmt.Errorf("get health record %s/%s: %w", userID, date.Format(health.DateFormat), err)
	}
	return rec, true, nil
}

// ListByUser returns all records for a user.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]health.MetricRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, date, sleep_hours, steps, water_litres, exercise_minutes, calories, score, feedback
		 FROM health_records WHERE user_id = $1 ORDER BY date`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list health records: %w", err)
	}
	defer rows.Close()

	var recs []health.MetricRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan health record: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// CurrentUsername delegates to the session provider.
func (s *PostgresStore) CurrentUsername() (string, bool) {
	if s.sessions == nil {
		return "", false
	}
	return s.sessions.CurrentUsername()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (health.MetricRecord, error) {
	var rec health.MetricRecord
	var date time.Time
	var score sql.NullInt64
	var feedback sql.NullString

	err := row.Scan(&rec.UserID, &date, &rec.SleepHours, &rec.Steps,
		&rec.WaterLitres, &rec.ExerciseMinutes, &rec.Calories, &score, &feedback)
	if err != nil {
		return health.MetricRecord{}, err
	}
	rec.Date = date

	if score.Valid {
		v := int(score.Int64)
		rec.Score = &v
		rec.Feedback = feedback.String
	}
	return rec, nil
}
