package interfaces

import "context"

// StateStore persists opaque string blobs under string keys.
type StateStore interface {
	// Get returns the value stored under key. The boolean is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
