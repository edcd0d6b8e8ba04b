package memory

import (
	"context"
	"sync"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
)

// MemoryStateStore is an in-memory implementation of interfaces.StateStore.
// It is safe for concurrent use.
type MemoryStateStore struct {
	mu     sync.Mutex        // protects values
	values map[string]string // blobs by key
	err    error             // returned by every call once set
}

// NewMemoryStateStore creates and returns a new MemoryStateStore instance
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		values: make(map[string]string),
	}
}

func (m *MemoryStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStateStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

// Fail makes every following call return err; nil restores normal operation.
// Useful for exercising persistence failures.
func (m *MemoryStateStore) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.err = err
}

// Compile-time check: ensure MemoryStateStore implements StateStore interface
var _ interfaces.StateStore = (*MemoryStateStore)(nil)
