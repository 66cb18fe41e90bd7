// Package config handles loading and managing Vitalscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Vitalscope.
type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Scoring ScoringConfig `yaml:"scoring"`
	AI      AIConfig      `yaml:"ai"`
	Server  ServerConfig  `yaml:"server"`
}

// StoreConfig selects and configures the record store backend.
type StoreConfig struct {
	// Backend is one of: local, s3, gcs, postgres.
	Backend     string    `yaml:"backend"`
	Path        string    `yaml:"path"`         // local backend
	DatabaseURL string    `yaml:"database_url"` // postgres backend
	S3          S3Config  `yaml:"s3"`
	GCS         GCSConfig `yaml:"gcs"`
}

// S3Config configures the S3 blob backend.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Key       string `yaml:"key"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// GCSConfig configures the GCS blob backend.
type GCSConfig struct {
	Bucket string `yaml:"bucket"`
	Key    string `yaml:"key"`
}

// ScoringConfig selects the score calculator.
type ScoringConfig struct {
	// Calculator is "heuristic" or "external".
	Calculator string `yaml:"calculator"`
}

// AIConfig configures the external calculator's text-generation service.
type AIConfig struct {
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// ServerConfig configures the hosted daemon.
type ServerConfig struct {
	Port   string `yaml:"port"`
	APIKey string `yaml:"api_key"`
}

// DefaultConfig returns a Config with sensible defaults: a local JSON store
// under the user's data directory and the heuristic calculator.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "local",
			Path:    filepath.Join(DataDir(), "health_records.json"),
		},
		Scoring: ScoringConfig{
			Calculator: "heuristic",
		},
		AI: AIConfig{
			Model:          "claude-sonnet-4-5",
			MaxTokens:      1024,
			TimeoutSeconds: 30,
		},
		Server: ServerConfig{
			Port: "8080",
		},
	}
}

// Load reads a config file from the given path. An empty path means the
// default location. If the file does not exist, it returns the default
// config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// DataDir returns the directory holding the local record collection.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".vitalscope")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(DataDir(), "config.yaml")
}
