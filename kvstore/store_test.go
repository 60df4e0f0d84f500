package kvstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.GetItem(ctx, "missing")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, s.SetItem(ctx, "foo", "bar"))
			v, ok, err := s.GetItem(ctx, "foo")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, "bar", v)

			// Overwrite
			require.NoError(t, s.SetItem(ctx, "foo", "baz"))
			v, _, _ = s.GetItem(ctx, "foo")
			require.Equal(t, "baz", v)

			require.NoError(t, s.RemoveItem(ctx, "foo"))
			_, ok, err = s.GetItem(ctx, "foo")
			require.NoError(t, err)
			require.False(t, ok)

			// Removing an absent key is not an error
			require.NoError(t, s.RemoveItem(ctx, "foo"))
		})
	}
}

func TestStoreMultiRemoveAndKeys(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{"a", "b", "c"} {
				require.NoError(t, s.SetItem(ctx, k, "v"))
			}

			keys, err := s.GetAllKeys(ctx)
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"a", "b", "c"}, keys)

			require.NoError(t, s.MultiRemove(ctx, []string{"a", "c"}))
			keys, err = s.GetAllKeys(ctx)
			require.NoError(t, err)
			require.Equal(t, []string{"b"}, keys)
		})
	}
}

func TestFileStoreUnsafeKeys(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	tests := []string{
		"SEARCH_CACHE_RESULTS_-123456789",
		"weird/key: with?unsafe&chars",
		"long_" + strings.Repeat("x", 300),
	}
	for _, key := range tests {
		require.NoError(t, fs.SetItem(ctx, key, "payload"))
		v, ok, err := fs.GetItem(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "key %q", key)
		require.Equal(t, "payload", v)
	}

	keys, err := fs.GetAllKeys(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, tests, keys, "original keys survive filename sanitization")
}
