package service

import (
	"context"
	"io"
	"time"
)

// MediaStorage defines the interface for storing uploaded media bytes.
// Implementations sit on a blob bucket (local disk in development, cloud
// storage in production); the database only holds metadata.
type MediaStorage interface {
	// Put streams an object into the bucket under the given key.
	Put(ctx context.Context, key, contentType string, body io.Reader) error

	// Delete removes an object from the bucket.
	Delete(ctx context.Context, key string) error

	// SignedURL returns a time-limited URL for reading an object.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
