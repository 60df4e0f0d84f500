package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

// Results caches result payloads of type T in a kvstore.Store.
//
// Both operations are best-effort: a broken store, a malformed stored entry or
// a marshalling failure is logged and surfaces as a miss (Load) or a no-op
// (Save). Neither ever returns an error, so call sites always fall through to
// their normal fresh-fetch path.
//
// Stale entries are never deleted; staleness is judged on every read. A Save
// under an existing key fully replaces the previous entry.
type Results[T any] struct {
	store kvstore.Store
	log   zerolog.Logger
	now   func() time.Time
}

// ResultsOption configures a Results cache.
type ResultsOption[T any] func(*Results[T])

// WithLogger routes the cache's best-effort failure logs.
func WithLogger[T any](log zerolog.Logger) ResultsOption[T] {
	return func(r *Results[T]) { r.log = log }
}

// WithClock substitutes the time source. Tests use this to cross the expiry
// boundary without sleeping.
func WithClock[T any](now func() time.Time) ResultsOption[T] {
	return func(r *Results[T]) { r.now = now }
}

// NewResults creates a result cache over store.
func NewResults[T any](store kvstore.Store, opts ...ResultsOption[T]) *Results[T] {
	r := &Results[T]{
		store: store,
		log:   zerolog.Nop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Save writes payload under the key derived from (prefix, params, filters,
// sort). A ttl of zero applies DefaultExpiry.
func (r *Results[T]) Save(ctx context.Context, prefix string, params map[string]any, payload T, filters []string, sortOpt string, ttl time.Duration) {
	key := Key(prefix, params, filters, sortOpt)

	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache save: marshal payload failed")
		return
	}
	if ttl <= 0 {
		ttl = DefaultExpiry
	}
	if sortOpt == "" {
		sortOpt = DefaultSort
	}
	entry := Entry{
		Data:      data,
		Timestamp: r.now().UnixMilli(),
		Filters:   sortedCopy(filters),
		Sort:      sortOpt,
		ExpiryMS:  ttl.Milliseconds(),
	}
	raw, err := json.Marshal(&entry)
	if err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache save: marshal entry failed")
		return
	}
	if err := r.store.SetItem(ctx, key, string(raw)); err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache save: store write failed")
	}
}

// Load returns the cached payload for (prefix, params, filters, sort), or
// ok=false when there is none: absent key, unreadable entry, age beyond the
// effective expiry window, or a filter/sort set that differs from the one the
// entry was written under. A positive ttl overrides the entry's own window.
func (r *Results[T]) Load(ctx context.Context, prefix string, params map[string]any, filters []string, sortOpt string, ttl time.Duration) (T, bool) {
	var zero T
	key := Key(prefix, params, filters, sortOpt)

	raw, found, err := r.store.GetItem(ctx, key)
	if err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache load: store read failed")
		return zero, false
	}
	if !found {
		return zero, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache load: malformed entry")
		return zero, false
	}
	if entry.expired(r.now(), ttl) {
		return zero, false
	}
	if !entry.matches(filters, sortOpt) {
		return zero, false
	}

	var payload T
	if err := json.Unmarshal(entry.Data, &payload); err != nil {
		r.log.Debug().Err(err).Str("key", key).Msg("cache load: malformed payload")
		return zero, false
	}
	return payload, true
}
