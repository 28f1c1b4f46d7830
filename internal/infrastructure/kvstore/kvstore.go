// Package kvstore talks to the flat key-value backend that holds the
// catalog and order collections.
//
// The backend offers single-key get/set/delete only. There is no
// compare-and-set on the REST surface we use, so concurrent read-modify-write
// cycles against the same key are last-write-wins. Callers own that trade-off;
// the store does not pretend otherwise.
package kvstore

import "context"

type Pair struct {
	Key   string
	Value string
}

type Store interface {
	// Get returns the raw value stored under key, or nil when the key is
	// absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value string) error
	// Delete reports whether a key was actually removed.
	Delete(ctx context.Context, key string) (bool, error)
	// SetMulti writes several keys in one round trip where the backend
	// supports pipelining. It is best-effort, not atomic.
	SetMulti(ctx context.Context, pairs []Pair) error
}
