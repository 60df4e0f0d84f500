package products

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/koushikreddyvayalpati/trustudsel-cache/cache"
	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

// Searcher is the slice of Client the loader needs; tests substitute a stub.
type Searcher interface {
	Search(ctx context.Context, params SearchParams, filters []string, sortOpt string) (SearchResult, error)
}

// Loader is the screen-level data flow: consult the cache, fall back to the
// API on a miss, write the fresh page back through, and remember non-empty
// query text in the recent-search list.
type Loader struct {
	api         Searcher
	cache       *cache.Search[SearchResult]
	log         zerolog.Logger
	ttl         time.Duration
	recentLimit int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithTTL overrides the per-query expiry window passed to the cache.
func WithTTL(ttl time.Duration) LoaderOption {
	return func(l *Loader) { l.ttl = ttl }
}

// WithLogger routes the loader's hit/miss logs.
func WithLogger(log zerolog.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// WithRecentLimit bounds the recent-search list.
func WithRecentLimit(n int) LoaderOption {
	return func(l *Loader) { l.recentLimit = n }
}

// NewLoader creates a loader over the given API client and store.
func NewLoader(api Searcher, store kvstore.Store, opts ...LoaderOption) *Loader {
	l := &Loader{
		api: api,
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(l)
	}
	l.cache = cache.NewSearch[SearchResult](store, l.log, l.recentLimit)
	return l
}

// Search returns results for the query, cached when fresh. Cache reads and
// writes are best-effort; only the remote fetch can fail.
func (l *Loader) Search(ctx context.Context, params SearchParams, filters []string, sortOpt string) (SearchResult, error) {
	log := l.log.With().Str("request_id", uuid.NewString()).Str("query", params.Query).Logger()

	if result, ok := l.cache.CachedResults(ctx, params.Map(), filters, sortOpt, l.ttl); ok {
		log.Info().Msg("search served from cache")
		return result, nil
	}

	log.Info().Msg("cache miss, fetching from API")
	result, err := l.api.Search(ctx, params, filters, sortOpt)
	if err != nil {
		return SearchResult{}, err
	}

	l.cache.CacheResults(ctx, params.Map(), result, filters, sortOpt, l.ttl)
	if params.Query != "" {
		l.cache.SaveRecentSearch(ctx, params.Query)
	}
	return result, nil
}

// RecentSearches returns the remembered query strings, most-recent-first.
func (l *Loader) RecentSearches(ctx context.Context) []string {
	return l.cache.RecentSearches(ctx)
}
