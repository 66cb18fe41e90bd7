// Package api implements the hosted Vitalscope REST API: record ingestion,
// daily score computation, and history/insights reads.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vitalscope/vitalscope/internal/tracker"
	"github.com/vitalscope/vitalscope/pkg/health"
)

// Handler is the top-level API handler for the hosted Vitalscope service.
type Handler struct {
	svc *tracker.Service
}

// NewHandler creates a new API handler.
func NewHandler(svc *tracker.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/metrics", h.handleRecordMetrics)
	mux.HandleFunc("POST /api/v1/scores", h.handleComputeScore)
	mux.HandleFunc("GET /api/v1/users/{userID}/history", h.handleHistory)
	mux.HandleFunc("GET /api/v1/users/{userID}/insights", h.handleInsights)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps the core error taxonomy onto HTTP statuses. The
// error's own message is surfaced; typed errors never leak internals.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validation  *health.ValidationError
		notFound    *health.NotFoundError
		calculator  *health.CalculatorError
		persistence *health.PersistenceError
		metricType  *health.InvalidMetricTypeError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &metricType):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &calculator):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.As(err, &persistence):
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
