package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vitalscope/vitalscope/internal/api"
	"github.com/vitalscope/vitalscope/internal/session"
	"github.com/vitalscope/vitalscope/internal/store"
	"github.com/vitalscope/vitalscope/internal/tracker"
	"github.com/vitalscope/vitalscope/pkg/health"
	"github.com/vitalscope/vitalscope/pkg/scoring"
)

// today keeps the recorded dates inside the query windows regardless of when
// the tests run.
func today() string {
	return time.Now().Format(health.DateFormat)
}

func metricsBody() string {
	return fmt.Sprintf(`{"userId":"alice","date":%q,"sleepHours":8,"steps":9000,"waterLitres":2.5,"exerciseMinutes":45,"calories":2000}`, today())
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	path := filepath.Join(t.TempDir(), "health_records.json")
	st, err := store.NewJSONStore(t.Context(), store.NewLocalBlob(path), &session.Static{Name: "alice"})
	if err != nil {
		t.Fatalf("NewJSONStore() error: %v", err)
	}
	svc := tracker.NewService(st, scoring.NewHeuristicCalculator())

	mux := http.NewServeMux()
	api.NewHandler(svc).RegisterRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestRecordThenScore(t *testing.T) {
	mux := testMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/api/v1/metrics", metricsBody())
	if rr.Code != http.StatusOK {
		t.Fatalf("record metrics: status %d, body %s", rr.Code, rr.Body)
	}

	rr = doJSON(t, mux, http.MethodPost, "/api/v1/scores",
		fmt.Sprintf(`{"userId":"alice","date":%q}`, today()))
	if rr.Code != http.StatusOK {
		t.Fatalf("compute score: status %d, body %s", rr.Code, rr.Body)
	}

	var result scoring.ScoreResult
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode score result: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if result.Feedback == "" {
		t.Error("Feedback is empty")
	}
}

func TestRecordMetricsFallsBackToSession(t *testing.T) {
	mux := testMux(t)

	body := fmt.Sprintf(`{"date":%q,"sleepHours":7,"steps":5000,"waterLitres":2,"exerciseMinutes":30,"calories":1800}`, today())
	rr := doJSON(t, mux, http.MethodPost, "/api/v1/metrics", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rr.Code, rr.Body)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["userId"] != "alice" {
		t.Errorf("userId = %q, want session user alice", resp["userId"])
	}
}

func TestRecordMetricsRejectsBadInput(t *testing.T) {
	mux := testMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"userId":`},
		{"unknown field", `{"userId":"alice","date":"2026-08-30","heartRate":60}`},
		{"bad date", `{"userId":"alice","date":"30/08/2026"}`},
		{"negative sleep", `{"userId":"alice","date":"2026-08-30","sleepHours":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, mux, http.MethodPost, "/api/v1/metrics", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", rr.Code, rr.Body)
			}
		})
	}
}

func TestScoreWithoutMetricsIs404(t *testing.T) {
	mux := testMux(t)

	rr := doJSON(t, mux, http.MethodPost, "/api/v1/scores",
		fmt.Sprintf(`{"userId":"alice","date":%q}`, today()))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", rr.Code, rr.Body)
	}
	if !strings.Contains(rr.Body.String(), "No health metrics found for "+today()) {
		t.Errorf("body %s missing the not-found message", rr.Body)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	mux := testMux(t)
	doJSON(t, mux, http.MethodPost, "/api/v1/metrics", metricsBody())

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/users/alice/history?metric=sleep&range=week", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}

	var resp struct {
		Points []struct {
			Date  string  `json:"date"`
			Value float64 `json:"value"`
		} `json:"points"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Points) != 1 || resp.Points[0].Value != 8 {
		t.Errorf("points = %+v, want one sleep point of 8", resp.Points)
	}

	rr = doJSON(t, mux, http.MethodGet, "/api/v1/users/alice/history?metric=steps&range=week", "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("steps query: status = %d, want 400", rr.Code)
	}
}

func TestInsightsEndpointWithSparseData(t *testing.T) {
	mux := testMux(t)
	doJSON(t, mux, http.MethodPost, "/api/v1/metrics", metricsBody())

	rr := doJSON(t, mux, http.MethodGet, "/api/v1/users/alice/insights?range=week", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body)
	}
	if !strings.Contains(rr.Body.String(), "not enough data") {
		t.Errorf("body %s should explain the three-day minimum", rr.Body)
	}
}
