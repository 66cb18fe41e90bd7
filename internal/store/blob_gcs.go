package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSBlob stores the record collection as a single object in Google Cloud
// Storage.
type GCSBlob struct {
	client *gcs.Client
	bucket string
	key    string
}

// NewGCSBlob creates a GCS-backed Blob.
// It uses Application Default Credentials (works with Workload Identity, SA
// keys, gcloud auth).
func NewGCSBlob(ctx context.Context, bucket, key string) (*GCSBlob, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	if key == "" {
		key = "health_records.json"
	}
	return &GCSBlob{client: client, bucket: bucket, key: key}, nil
}

// Get fetches the collection object. A missing object is the valid bootstrap
// state and returns nil.
func (b *GCSBlob) Get(ctx context.Context) ([]byte, error) {
	r, err := b.client.Bucket(b.bucket).Object(b.key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("gcs read %s: %w", b.key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Put replaces the collection object.
func (b *GCSBlob) Put(ctx context.Context, data []byte) error {
	w := b.client.Bucket(b.bucket).Object(b.key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", b.key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", b.key, err)
	}
	return nil
}
