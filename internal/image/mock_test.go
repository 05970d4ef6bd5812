package image

import (
	"context"
	"sync"

	"github.com/yoshikazuuu/img-host/internal/storage"
)

// mockStore implements storage.Store in memory so handler and service tests
// can run without an object store and assert on recorded writes.
type mockStore struct {
	mu         sync.Mutex
	objects    map[string]*storage.Object
	putCalls   int
	putErr     error
	getErr     error
	publicBase string
}

func newMockStore() *mockStore {
	return &mockStore{objects: make(map[string]*storage.Object)}
}

func (m *mockStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putCalls++
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = &storage.Object{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
		ETag:        "etag-" + key,
	}
	return nil
}

func (m *mockStore) Get(_ context.Context, key string) (*storage.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	obj, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return obj, nil
}

func (m *mockStore) PublicURL(key string) string {
	if m.publicBase == "" {
		return ""
	}
	return m.publicBase + "/" + key
}

func (m *mockStore) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.putCalls
}
