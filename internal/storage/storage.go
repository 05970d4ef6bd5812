// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup —
// both backends speak the S3 wire protocol (MinIO locally, Cloudflare R2 or
// AWS S3 in production).
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// Object is a stored blob together with its metadata.
type Object struct {
	Data        []byte
	ContentType string
	ETag        string
}

// Store is the interface for writing and reading stored objects.
type Store interface {
	// Put writes data to the store under the given key. A failed write
	// leaves no partial object behind.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get reads the object identified by key, or ErrNotFound.
	Get(ctx context.Context, key string) (*Object, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	// It returns "" when no public base URL is configured.
	PublicURL(key string) string
}
