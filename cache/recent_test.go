package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/koushikreddyvayalpati/trustudsel-cache/kvstore"
)

func TestRecentRecordAndList(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(kvstore.NewMemoryStore(), "recent")

	r.Record(ctx, "calculus")
	r.Record(ctx, "lamp")
	r.Record(ctx, "desk")

	require.Equal(t, []string{"desk", "lamp", "calculus"}, r.List(ctx))
}

func TestRecentBounding(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(kvstore.NewMemoryStore(), "recent")

	for i := 1; i <= 11; i++ {
		r.Record(ctx, fmt.Sprintf("term-%d", i))
	}

	got := r.List(ctx)
	require.Len(t, got, DefaultRecentLimit)
	require.Equal(t, "term-11", got[0], "newest term first")
	require.Equal(t, "term-2", got[len(got)-1], "first inserted term evicted")
	require.NotContains(t, got, "term-1")
}

func TestRecentDedupMovesToFront(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(kvstore.NewMemoryStore(), "recent")

	r.Record(ctx, "a")
	r.Record(ctx, "b")
	r.Record(ctx, "c")
	r.Record(ctx, "a")

	require.Equal(t, []string{"a", "c", "b"}, r.List(ctx))
}

func TestRecentCustomLimit(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(kvstore.NewMemoryStore(), "recent", WithRecentLimit(3))

	for _, term := range []string{"a", "b", "c", "d"} {
		r.Record(ctx, term)
	}
	require.Equal(t, []string{"d", "c", "b"}, r.List(ctx))
}

func TestRecentIgnoresEmptyTerm(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(kvstore.NewMemoryStore(), "recent")

	r.Record(ctx, "")
	require.Empty(t, r.List(ctx))
}

func TestRecentBrokenStore(t *testing.T) {
	ctx := context.Background()
	r := NewRecent(brokenStore{}, "recent")

	// Must not panic or surface errors; List degrades to empty
	r.Record(ctx, "calculus")
	require.Empty(t, r.List(ctx))
}

func TestRecentMalformedList(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.SetItem(ctx, "recent", "not json"))

	r := NewRecent(store, "recent")
	require.Empty(t, r.List(ctx))
}
