package api

import "net/http"

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	metric := r.URL.Query().Get("metric")
	timeRange := r.URL.Query().Get("range")

	points, err := h.svc.QueryHistory(r.Context(), userID, metric, timeRange)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId": userID,
		"metric": metric,
		"range":  timeRange,
		"points": points,
	})
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	timeRange := r.URL.Query().Get("range")

	report, err := h.svc.Insights(r.Context(), userID, timeRange)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if report == nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"userId":  userID,
			"message": "not enough data for insights; log at least three days of metrics",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"userId":    userID,
		"report":    report,
		"narrative": report.Narrative(),
	})
}
