// Command vitalscoped is the hosted Vitalscope service. It serves the record,
// score, history, and insights endpoints over a Postgres-backed store, plus a
// health check.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/vitalscope/vitalscope/internal/ai"
	"github.com/vitalscope/vitalscope/internal/api"
	"github.com/vitalscope/vitalscope/internal/session"
	"github.com/vitalscope/vitalscope/internal/store"
	"github.com/vitalscope/vitalscope/internal/tracker"
	"github.com/vitalscope/vitalscope/pkg/config"
	"github.com/vitalscope/vitalscope/pkg/scoring"
)

func main() {
	cfg, err := config.Load(os.Getenv("VITALSCOPE_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dbURL := envOrDefault("DATABASE_URL", cfg.Store.DatabaseURL)
	if dbURL == "" {
		dbURL = "postgres://localhost:5432/vitalscope?sslmode=disable"
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	st := store.NewPostgresStore(db, &session.EnvProvider{})

	calc, err := buildCalculator(cfg)
	if err != nil {
		log.Fatalf("build calculator: %v", err)
	}

	svc := tracker.NewService(st, calc)
	handler := api.NewHandler(svc)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	apiKey := envOrDefault("API_KEY", cfg.Server.APIKey)
	port := envOrDefault("PORT", cfg.Server.Port)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: api.RequestLog(api.CORS(api.APIKeyAuth(apiKey)(mux))),
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting vitalscoped on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildCalculator(cfg *config.Config) (scoring.Calculator, error) {
	if cfg.Scoring.Calculator == "external" {
		client, err := ai.NewClient(cfg.AI.Model, cfg.AI.MaxTokens,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		return scoring.NewExternalCalculator(client), nil
	}
	return scoring.NewHeuristicCalculator(), nil
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
