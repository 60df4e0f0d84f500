package cache

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

// DefaultRecentLimit caps the recent-search list.
const DefaultRecentLimit = 10

// Recent keeps a bounded most-recently-used list of literal search terms,
// persisted as a single JSON array under one store key. Like Results it is
// best-effort: persistence failures are logged and never surface.
type Recent struct {
	store kvstore.Store
	key   string
	limit int
	log   zerolog.Logger
}

// RecentOption configures a Recent list.
type RecentOption func(*Recent)

// WithRecentLimit overrides the DefaultRecentLimit bound.
func WithRecentLimit(n int) RecentOption {
	return func(r *Recent) {
		if n > 0 {
			r.limit = n
		}
	}
}

// WithRecentLogger routes the list's failure logs.
func WithRecentLogger(log zerolog.Logger) RecentOption {
	return func(r *Recent) { r.log = log }
}

// NewRecent creates a recent-search list stored under key.
func NewRecent(store kvstore.Store, key string, opts ...RecentOption) *Recent {
	r := &Recent{
		store: store,
		key:   key,
		limit: DefaultRecentLimit,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Record moves term to the front of the list, dropping any earlier occurrence
// and truncating to the limit, then persists the whole list in one write.
func (r *Recent) Record(ctx context.Context, term string) {
	if term == "" {
		return
	}

	terms := r.List(ctx)
	updated := make([]string, 0, len(terms)+1)
	updated = append(updated, term)
	for _, t := range terms {
		if t == term {
			continue
		}
		updated = append(updated, t)
	}
	if len(updated) > r.limit {
		updated = updated[:r.limit]
	}

	raw, err := json.Marshal(updated)
	if err != nil {
		r.log.Debug().Err(err).Msg("recent searches: marshal failed")
		return
	}
	if err := r.store.SetItem(ctx, r.key, string(raw)); err != nil {
		r.log.Debug().Err(err).Msg("recent searches: store write failed")
	}
}

// List returns the stored terms most-recent-first, or an empty list when the
// key is absent or unreadable.
func (r *Recent) List(ctx context.Context) []string {
	raw, found, err := r.store.GetItem(ctx, r.key)
	if err != nil {
		r.log.Debug().Err(err).Msg("recent searches: store read failed")
		return nil
	}
	if !found {
		return nil
	}
	var terms []string
	if err := json.Unmarshal([]byte(raw), &terms); err != nil {
		r.log.Debug().Err(err).Msg("recent searches: malformed list")
		return nil
	}
	return terms
}
