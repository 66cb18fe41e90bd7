package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vitalscope/vitalscope/internal/session"
	"github.com/vitalscope/vitalscope/pkg/health"
)

// Store is the persistence contract for health metric records: a durable
// mapping from (userID, date) to MetricRecord.
type Store interface {
	// Upsert replaces the record for (rec.UserID, rec.Date) in place, or
	// appends it if absent. Either the full updated collection commits or the
	// prior state remains visible.
	Upsert(ctx context.Context, rec health.MetricRecord) error
	// GetByUserAndDate returns the record for the exact (userID, date) pair.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (health.MetricRecord, bool, error)
	// ListByUser returns all records for a user. Order is not meaningful;
	// callers sort as needed.
	ListByUser(ctx context.Context, userID string) ([]health.MetricRecord, error)
	// CurrentUsername resolves the acting user via the session collaborator.
	CurrentUsername() (string, bool)
}

// fieldAliases maps current persisted field names to their legacy aliases.
// Reads prefer the current name and fall back to the legacy one; writes emit
// both names so older and newer readers of the same data stay compatible.
// This table is the whole schema-migration mechanism: keep it in one place.
var fieldAliases = map[string]string{
	"sleepHours":  "sleep",
	"waterLitres": "waterIntake",
}

// JSONStore keeps the full record collection in memory and rewrites it as a
// whole through a Blob on every upsert. Suitable for single-process,
// per-user datasets; beyond a few thousand records an indexed store
// (PostgresStore) should be used instead.
type JSONStore struct {
	blob     Blob
	sessions session.Provider
	records  []health.MetricRecord
}

// NewJSONStore loads the record collection from the blob. Content that is not
// parseable as a JSON array of records is a fatal initialization error; an
// absent blob or a literal empty array is the valid "no records yet" state.
func NewJSONStore(ctx context.Context, blob Blob, sessions session.Provider) (*JSONStore, error) {
	s := &JSONStore{blob: blob, sessions: sessions}

	data, err := blob.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading health records: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing health records: %w", err)
	}
	for i, m := range raw {
		rec, err := decodeRecord(m)
		if err != nil {
			return nil, fmt.Errorf("parsing health record %d: %w", i, err)
		}
		s.records = append(s.records, rec)
	}
	return s, nil
}

// Upsert replaces or appends the record, preserving positional order, and
// commits the whole collection. On a failed write the in-memory state keeps
// the prior collection.
func (s *JSONStore) Upsert(ctx context.Context, rec health.MetricRecord) error {
	next := make([]health.MetricRecord, len(s.records))
	copy(next, s.records)

	replaced := false
	for i, r := range next {
		if r.UserID == rec.UserID && r.SameDay(rec.Date) {
			next[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, rec)
	}

	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.records = next
	return nil
}

func (s *JSONStore) commit(ctx context.Context, records []health.MetricRecord) error {
	encoded := make([]map[string]any, 0, len(records))
	for _, r := range records {
		encoded = append(encoded, encodeRecord(r))
	}
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling health records: %w", err)
	}
	if err := s.blob.Put(ctx, data); err != nil {
		return fmt.Errorf("writing health records: %w", err)
	}
	return nil
}

// GetByUserAndDate returns the record for the exact (userID, date) pair.
func (s *JSONStore) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (health.MetricRecord, bool, error) {
	for _, r := range s.records {
		if r.UserID == userID && r.SameDay(date) {
			return r, true, nil
		}
	}
	return health.MetricRecord{}, false, nil
}

// ListByUser returns a copy of all records for a user.
func (s *JSONStore) ListByUser(ctx context.Context, userID string) ([]health.MetricRecord, error) {
	var out []health.MetricRecord
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// CurrentUsername delegates to the session provider.
func (s *JSONStore) CurrentUsername() (string, bool) {
	if s.sessions == nil {
		return "", false
	}
	return s.sessions.CurrentUsername()
}

// decodeRecord maps one persisted object onto a MetricRecord, applying the
// alias fallback for dual-named fields and defaulting absent fields to zero.
func decodeRecord(m map[string]any) (health.MetricRecord, error) {
	dateStr, _ := m["date"].(string)
	date, err := health.ParseDate(dateStr)
	if err != nil {
		return health.MetricRecord{}, err
	}

	userID, _ := m["userId"].(string)
	rec := health.MetricRecord{
		UserID:          userID,
		Date:            date,
		SleepHours:      readNumber(m, "sleepHours"),
		Steps:           int(readNumber(m, "steps")),
		WaterLitres:     readNumber(m, "waterLitres"),
		ExerciseMinutes: readNumber(m, "exerciseMinutes"),
		Calories:        int(readNumber(m, "calories")),
	}
	if v, ok := asNumber(m["score"]); ok {
		score := int(v)
		rec.Score = &score
		rec.Feedback, _ = m["feedback"].(string)
	}
	return rec, nil
}

// encodeRecord maps a MetricRecord onto its persisted object, dual-emitting
// every aliased field.
func encodeRecord(r health.MetricRecord) map[string]any {
	m := map[string]any{
		"userId":          r.UserID,
		"date":            r.DateString(),
		"sleepHours":      r.SleepHours,
		"steps":           r.Steps,
		"waterLitres":     r.WaterLitres,
		"exerciseMinutes": r.ExerciseMinutes,
		"calories":        r.Calories,
	}
	for current, legacy := range fieldAliases {
		m[legacy] = m[current]
	}
	if r.Score != nil {
		m["score"] = *r.Score
		m["feedback"] = r.Feedback
	}
	return m
}

// readNumber reads a numeric field, preferring the current name, falling back
// to its legacy alias, and defaulting to zero.
func readNumber(m map[string]any, key string) float64 {
	if v, ok := asNumber(m[key]); ok {
		return v
	}
	if legacy, ok := fieldAliases[key]; ok {
		if v, ok := asNumber(m[legacy]); ok {
			return v
		}
	}
	return 0
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
