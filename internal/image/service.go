package image

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yoshikazuuu/img-host/internal/storage"
)

// Service contains business logic for storing and retrieving images.
type Service struct {
	store  storage.Store
	keys   *KeyGenerator
	logger zerolog.Logger
}

// NewService creates a new image Service.
func NewService(store storage.Store, keys *KeyGenerator, logger zerolog.Logger) *Service {
	return &Service{store: store, keys: keys, logger: logger}
}

// Upload derives a storage key for the uploaded filename and writes the
// payload to the object store. It returns the derived key.
func (s *Service) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	key := s.keys.DeriveKey(filename)

	if err := s.store.Put(ctx, key, data, contentType); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("image store failed")
		return "", fmt.Errorf("store image: %w", err)
	}

	s.logger.Info().
		Str("key", key).
		Int("size", len(data)).
		Str("content_type", contentType).
		Msg("image stored")
	return key, nil
}

// Fetch reads the stored object for key.
func (s *Service) Fetch(ctx context.Context, key string) (*storage.Object, error) {
	obj, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().Err(err).Str("key", key).Msg("image fetch failed")
		}
		return nil, fmt.Errorf("fetch image %q: %w", key, err)
	}
	return obj, nil
}

// PublicURL returns the browser-accessible URL for a stored key, or ""
// when no public base URL is configured.
func (s *Service) PublicURL(key string) string {
	return s.store.PublicURL(key)
}

// IsNotFound returns true when the error indicates the key does not exist.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
