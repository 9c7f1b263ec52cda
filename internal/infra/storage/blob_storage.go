// Package storage implements media storage on top of a gocloud blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"time"

	"detailers/config"
	"detailers/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured media bucket and wraps it as a MediaStorage.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open media bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Media bucket opened", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Put streams an object into the bucket under the given key.
func (s *blobStorage) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Close discards the partial write on error.
		writer.Close()

		return errors.Wrapf(err, "write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return errors.Wrapf(err, "commit object %s", key)
	}

	return nil
}

// Delete removes an object from the bucket.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}

// SignedURL returns a time-limited URL for reading an object.
func (s *blobStorage) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Expiry: expiry,
	})
	if err != nil {
		return "", errors.Wrapf(err, "sign url for %s", key)
	}

	return url, nil
}

// Module provides the media storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
