// Package storage stores uploaded binary assets in a blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers are selected by the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds the dependencies of the blob storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.BlobStorage.
func New(params Params) (service.BlobStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is not configured")
	}

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the blob under key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	s.logger.Info("Blob uploaded",
		slog.String("key", key),
		slog.String("contentType", contentType))

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes the blob stored under key.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
