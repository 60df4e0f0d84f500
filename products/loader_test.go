package products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

// stubAPI counts calls and serves a canned page.
type stubAPI struct {
	calls  int
	result SearchResult
	err    error
}

func (s *stubAPI) Search(context.Context, SearchParams, []string, string) (SearchResult, error) {
	s.calls++
	return s.result, s.err
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store unavailable")
}
func (brokenStore) SetItem(context.Context, string, string) error {
	return errors.New("store unavailable")
}
func (brokenStore) RemoveItem(context.Context, string) error { return errors.New("store unavailable") }
func (brokenStore) MultiRemove(context.Context, []string) error {
	return errors.New("store unavailable")
}
func (brokenStore) GetAllKeys(context.Context) ([]string, error) {
	return nil, errors.New("store unavailable")
}

func TestLoaderCachesSecondSearch(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{result: SearchResult{Products: []Product{{ID: "1", Name: "Calculus"}}}}
	l := NewLoader(api, kvstore.NewMemoryStore())

	params := SearchParams{Query: "calculus"}
	filters := []string{"brand-new"}

	first, err := l.Search(ctx, params, filters, "price_low_high")
	require.NoError(t, err)
	require.Equal(t, 1, api.calls)

	second, err := l.Search(ctx, params, filters, "price_low_high")
	require.NoError(t, err)
	require.Equal(t, 1, api.calls, "second identical search must be served from cache")
	require.Equal(t, first, second)

	// A different filter set is a different query
	_, err = l.Search(ctx, params, nil, "price_low_high")
	require.NoError(t, err)
	require.Equal(t, 2, api.calls)
}

func TestLoaderRecordsRecentSearches(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{}
	l := NewLoader(api, kvstore.NewMemoryStore())

	_, err := l.Search(ctx, SearchParams{Query: "calculus"}, nil, "")
	require.NoError(t, err)
	_, err = l.Search(ctx, SearchParams{Query: "lamp"}, nil, "")
	require.NoError(t, err)

	// Browsing without query text records nothing
	_, err = l.Search(ctx, SearchParams{Category: "furniture"}, nil, "")
	require.NoError(t, err)

	require.Equal(t, []string{"lamp", "calculus"}, l.RecentSearches(ctx))
}

func TestLoaderAPIErrorPropagates(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{err: errors.New("api down")}
	l := NewLoader(api, kvstore.NewMemoryStore())

	_, err := l.Search(ctx, SearchParams{Query: "x"}, nil, "")
	require.ErrorContains(t, err, "api down")
	require.Empty(t, l.RecentSearches(ctx), "failed fetches are not remembered")
}

func TestLoaderSurvivesBrokenStore(t *testing.T) {
	ctx := context.Background()
	api := &stubAPI{result: SearchResult{Products: []Product{{ID: "1"}}}}
	l := NewLoader(api, brokenStore{})

	// Cache is best-effort: every search falls through to the API, none fail
	for i := 0; i < 2; i++ {
		result, err := l.Search(ctx, SearchParams{Query: "calculus"}, nil, "")
		require.NoError(t, err)
		require.Len(t, result.Products, 1)
	}
	require.Equal(t, 2, api.calls)
	require.Empty(t, l.RecentSearches(ctx))
}
