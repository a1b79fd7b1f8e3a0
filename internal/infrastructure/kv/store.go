// Package kv provides the key-value store abstraction backing sessions
// and structured content. Values are JSON-encoded byte slices; no
// multi-key transactional semantics are assumed.
package kv

import (
	"context"
	"time"
)

// Entry is a key together with its stored value.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the minimal contract the application consumes: point reads
// and writes plus a prefix scan for listing collections.
type Store interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// ScanPrefix returns all entries whose key starts with prefix.
	ScanPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
