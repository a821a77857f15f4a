package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k1", []byte("v1"), time.Minute))

	got, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)

	// The cache hands out copies; mutating them must not leak back.
	got[0] = 'X'
	got, err = c.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)

	require.NoError(t, c.Delete(ctx, "k1"))
	_, err = c.Get(ctx, "k1")
	require.ErrorIs(t, err, ErrCacheMiss)

	// Deleting an absent key is a no-op.
	require.NoError(t, c.Delete(ctx, "k1"))
}

func TestMemoryCache_TTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "short", []byte("v"), 10*time.Millisecond))
	require.NoError(t, c.Set(ctx, "long", []byte("v"), time.Minute))

	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	require.ErrorIs(t, err, ErrCacheMiss)

	_, err = c.Get(ctx, "long")
	require.NoError(t, err)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got)
}
