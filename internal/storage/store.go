// Package storage defines the key-value store the form core persists into.
//
// A Store is the Go stand-in for the browser's localStorage: whole JSON
// documents under a handful of named keys (see common.RegisteredUsersKey and
// common.CurrentUserKey). Backends live in sub-packages; backends.Open picks
// one from config.
package storage

import "context"

// Store reads and writes whole values by key.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set creates or overwrites the value.
//
// Implementations must be safe for concurrent use. They provide no
// compare-and-set: callers doing read-modify-write can lose updates when two
// writers race.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
