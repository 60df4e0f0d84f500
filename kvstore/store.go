// Package kvstore provides the persistent string key/value stores the
// search cache is layered on. All backends expose the same async
// get/set/remove/clear surface; none of them apply expiry on their own —
// freshness is judged by the cache layer at read time.
package kvstore

import "context"

// Store is a minimal string-keyed, string-valued store.
//
// GetItem returns ok=false (with a nil error) when the key is absent, so
// callers can tell "not there" apart from "store broken". Backends may be:
//   - an in-memory map
//   - files on disk
//   - Redis
//   - Postgres
type Store interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	MultiRemove(ctx context.Context, keys []string) error
	GetAllKeys(ctx context.Context) ([]string, error)
}
