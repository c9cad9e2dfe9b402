package service

import (
	"context"
	"io"
)

// BlobStorage defines the interface for storing uploaded binary assets,
// currently catalog images uploaded through the admin surface.
type BlobStorage interface {
	// Upload stores the blob under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}
