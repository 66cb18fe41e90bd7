package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/vitalscope/vitalscope/internal/ai"
	"github.com/vitalscope/vitalscope/internal/session"
	"github.com/vitalscope/vitalscope/internal/store"
	"github.com/vitalscope/vitalscope/internal/tracker"
	"github.com/vitalscope/vitalscope/pkg/config"
	"github.com/vitalscope/vitalscope/pkg/scoring"
)

// newService wires config -> store -> calculator -> service for one CLI run.
func newService(ctx context.Context, cfgPath string) (*tracker.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	calc, err := newCalculator(cfg)
	if err != nil {
		return nil, err
	}

	return tracker.NewService(st, calc), nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	sessions := &session.EnvProvider{}

	switch cfg.Store.Backend {
	case "", "local":
		return store.NewJSONStore(ctx, store.NewLocalBlob(cfg.Store.Path), sessions)

	case "s3":
		blob, err := store.NewS3Blob(ctx, store.S3Config{
			Bucket:    cfg.Store.S3.Bucket,
			Key:       cfg.Store.S3.Key,
			Region:    cfg.Store.S3.Region,
			Endpoint:  cfg.Store.S3.Endpoint,
			AccessKey: cfg.Store.S3.AccessKey,
			SecretKey: cfg.Store.S3.SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return store.NewJSONStore(ctx, blob, sessions)

	case "gcs":
		blob, err := store.NewGCSBlob(ctx, cfg.Store.GCS.Bucket, cfg.Store.GCS.Key)
		if err != nil {
			return nil, err
		}
		return store.NewJSONStore(ctx, blob, sessions)

	case "postgres":
		db, err := sql.Open("postgres", cfg.Store.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db, sessions), nil
	}

	return nil, fmt.Errorf("unknown store backend %q (want local, s3, gcs, or postgres)", cfg.Store.Backend)
}

func newCalculator(cfg *config.Config) (scoring.Calculator, error) {
	switch cfg.Scoring.Calculator {
	case "", "heuristic":
		return scoring.NewHeuristicCalculator(), nil
	case "external":
		client, err := ai.NewClient(cfg.AI.Model, cfg.AI.MaxTokens,
			time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		return scoring.NewExternalCalculator(client), nil
	}
	return nil, fmt.Errorf("unknown calculator %q (want heuristic or external)", cfg.Scoring.Calculator)
}

// resolveUser prefers the --user flag, then the session collaborator.
func resolveUser(flagValue string, svc *tracker.Service) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if name, ok := svc.CurrentUsername(); ok {
		return name, nil
	}
	return "", fmt.Errorf("no user: pass --user or set VITALSCOPE_USER")
}
