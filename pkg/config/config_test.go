package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vitalscope/vitalscope/pkg/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Backend != "local" {
		t.Errorf("Store.Backend = %q, want local", cfg.Store.Backend)
	}
	if cfg.Scoring.Calculator != "heuristic" {
		t.Errorf("Scoring.Calculator = %q, want heuristic", cfg.Scoring.Calculator)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store:
  backend: postgres
  database_url: postgres://localhost/vitals
scoring:
  calculator: external
ai:
  timeout: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Backend != "postgres" {
		t.Errorf("Store.Backend = %q, want postgres", cfg.Store.Backend)
	}
	if cfg.Scoring.Calculator != "external" {
		t.Errorf("Scoring.Calculator = %q, want external", cfg.Scoring.Calculator)
	}
	if cfg.AI.TimeoutSeconds != 5 {
		t.Errorf("AI.TimeoutSeconds = %d, want 5", cfg.AI.TimeoutSeconds)
	}
	// Fields the file omits keep their defaults.
	if cfg.AI.MaxTokens != 1024 {
		t.Errorf("AI.MaxTokens = %d, want default 1024", cfg.AI.MaxTokens)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(path); err == nil {
		t.Error("Load() = nil error on invalid YAML, want failure")
	}
}
