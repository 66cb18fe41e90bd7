// Package store persists per-user, per-day health metric records. The primary
// implementation is a schema-tolerant JSON document store that reads and
// rewrites the whole record collection through a Blob, with local-file, S3,
// and GCS blob backends. A Postgres-backed store serves the hosted daemon.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Blob abstracts whole-collection storage for the JSON document store: one
// serialized record collection read and written as a unit.
type Blob interface {
	// Get returns the serialized collection, or nil if it does not exist yet.
	Get(ctx context.Context) ([]byte, error)
	// Put replaces the serialized collection.
	Put(ctx context.Context, data []byte) error
}

// LocalBlob stores the collection in a single file on the local filesystem.
type LocalBlob struct {
	Path string
}

// NewLocalBlob creates a LocalBlob at the given path.
func NewLocalBlob(path string) *LocalBlob {
	return &LocalBlob{Path: path}
}

// Get reads the collection file. A missing file is the valid "no records yet"
// bootstrap state and returns nil.
func (b *LocalBlob) Get(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", b.Path, err)
	}
	return data, nil
}

// Put atomically replaces the collection file via a rename from a temp file
// in the same directory.
func (b *LocalBlob) Put(ctx context.Context, data []byte) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".records-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", b.Path, err)
	}
	return nil
}
