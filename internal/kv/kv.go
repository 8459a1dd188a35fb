// Package kv provides the key-value byte stores the depot persists its
// collections in. Every backend stores whole values under string keys;
// a Set replaces the previous value in one write.
package kv

import "context"

// Store is a key-value byte store.
type Store interface {
	// Get returns the value stored under key. ok is false if the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
