package api

import (
	"net/http"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// recordMetricsRequest is the POST /api/v1/metrics body. An empty userId
// falls back to the session collaborator.
type recordMetricsRequest struct {
	UserID          string  `json:"userId"`
	Date            string  `json:"date"`
	SleepHours      float64 `json:"sleepHours"`
	Steps           int     `json:"steps"`
	WaterLitres     float64 `json:"waterLitres"`
	ExerciseMinutes float64 `json:"exerciseMinutes"`
	Calories        int     `json:"calories"`
}

func (h *Handler) handleRecordMetrics(w http.ResponseWriter, r *http.Request) {
	var req recordMetricsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID, ok := h.resolveUser(req.UserID)
	if !ok {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	date, err := health.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	rec := health.MetricRecord{
		UserID:          userID,
		Date:            date,
		SleepHours:      req.SleepHours,
		Steps:           req.Steps,
		WaterLitres:     req.WaterLitres,
		ExerciseMinutes: req.ExerciseMinutes,
		Calories:        req.Calories,
	}
	if err := h.svc.RecordMetrics(r.Context(), rec); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "recorded",
		"userId": userID,
		"date":   rec.DateString(),
	})
}

// resolveUser falls back to the session collaborator when the request names
// no user.
func (h *Handler) resolveUser(requested string) (string, bool) {
	if requested != "" {
		return requested, true
	}
	return h.svc.CurrentUsername()
}
