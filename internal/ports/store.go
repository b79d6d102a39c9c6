package ports

import "context"

// KeyValueStore defines the client port for a durable key-value store.
// Implemented by the backends under adapters/kv and decorated by
// platform/kvclient; called by the repository adapter.
//
// Implementations must be safe for concurrent use. Values are opaque bytes;
// callers own the slices they pass in and receive.
type KeyValueStore interface {
	// Get returns the value stored at key. found is false, with a nil error,
	// when the key has never been written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the value stored at key in full.
	Set(ctx context.Context, key string, value []byte) error
}
