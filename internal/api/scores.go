package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vitalscope/vitalscope/pkg/health"
)

// computeScoreRequest is the POST /api/v1/scores body.
type computeScoreRequest struct {
	UserID string `json:"userId"`
	Date   string `json:"date"`
}

func (h *Handler) handleComputeScore(w http.ResponseWriter, r *http.Request) {
	var req computeScoreRequest
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

	result, err := h.svc.ComputeDailyScore(r.Context(), userID, date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}
	return nil
}
