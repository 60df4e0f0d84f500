package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

// Key namespace shared by all search-screen callers. Unrelated callers of the
// same store must pick prefixes outside this namespace; nothing enforces it.
const (
	// SearchResultsPrefix namespaces cached result entries.
	SearchResultsPrefix = "SEARCH_CACHE_RESULTS_"
	// RecentSearchesKey holds the recent-search list.
	RecentSearchesKey = "SEARCH_CACHE_KEY"
)

// Search bundles the result cache and the recent-search list under the fixed
// search namespace. It is the surface the screen-level data loaders consume.
type Search[T any] struct {
	results *Results[T]
	recent  *Recent
}

// NewSearch creates a search cache over store. recentLimit bounds the
// recent-search list; zero or negative keeps the default.
func NewSearch[T any](store kvstore.Store, log zerolog.Logger, recentLimit int) *Search[T] {
	return &Search[T]{
		results: NewResults(store, WithLogger[T](log)),
		recent:  NewRecent(store, RecentSearchesKey, WithRecentLogger(log), WithRecentLimit(recentLimit)),
	}
}

// CacheResults stores a fresh result set for the given query. Best-effort.
func (s *Search[T]) CacheResults(ctx context.Context, params map[string]any, result T, filters []string, sortOpt string, ttl time.Duration) {
	s.results.Save(ctx, SearchResultsPrefix, params, result, filters, sortOpt, ttl)
}

// CachedResults returns the unexpired cached result set for the given query,
// or ok=false when the caller should fetch fresh data.
func (s *Search[T]) CachedResults(ctx context.Context, params map[string]any, filters []string, sortOpt string, ttl time.Duration) (T, bool) {
	return s.results.Load(ctx, SearchResultsPrefix, params, filters, sortOpt, ttl)
}

// SaveRecentSearch records term in the recent-search list.
func (s *Search[T]) SaveRecentSearch(ctx context.Context, term string) {
	s.recent.Record(ctx, term)
}

// RecentSearches returns recent terms most-recent-first.
func (s *Search[T]) RecentSearches(ctx context.Context) []string {
	return s.recent.List(ctx)
}
