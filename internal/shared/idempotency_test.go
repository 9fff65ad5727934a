package shared

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *IdempotencyStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewIdempotencyStore(client, time.Hour)
}

func TestIdempotencyReserveCompleteLookup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, found, err := store.Lookup(ctx, "entries", "abc")
	require.NoError(t, err)
	require.False(t, found)

	ok, err := store.Reserve(ctx, "entries", "abc")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Reserve(ctx, "entries", "abc")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = store.Lookup(ctx, "entries", "abc")
	require.ErrorIs(t, err, ErrIdempotencyConflict)

	require.NoError(t, store.Complete(ctx, "entries", "abc", "42"))
	val, found, err := store.Lookup(ctx, "entries", "abc")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "42", val)
}

func TestIdempotencyReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ok, err := store.Reserve(ctx, "entries", "k1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "entries", "k1"))

	ok, err = store.Reserve(ctx, "entries", "k1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIdempotencyNilStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	var store *IdempotencyStore
	ok, err := store.Reserve(ctx, "entries", "x")
	require.NoError(t, err)
	require.True(t, ok)
	_, found, err := store.Lookup(ctx, "entries", "x")
	require.NoError(t, err)
	require.False(t, found)
}
