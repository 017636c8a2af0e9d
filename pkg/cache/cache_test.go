package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	defer mc.Close()

	require.NoError(t, mc.Set(ctx, GenerateKey("quote", "AAPL"), quote{"AAPL", 190.5}, time.Minute))

	var got quote
	require.NoError(t, mc.Get(ctx, "quote:AAPL", &got))
	assert.Equal(t, quote{"AAPL", 190.5}, got)

	var s string
	require.NoError(t, mc.Set(ctx, "s", "plain", 0))
	require.NoError(t, mc.Get(ctx, "s", &s))
	assert.Equal(t, "plain", s)

	require.NoError(t, mc.Delete(ctx, "s"))
	assert.ErrorIs(t, mc.Get(ctx, "s", &s), ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	defer mc.Close()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { return now }

	require.NoError(t, mc.Set(ctx, "k", 1, time.Second))
	now = now.Add(2 * time.Second)

	var v int
	assert.ErrorIs(t, mc.Get(ctx, "k", &v), ErrCacheMiss)
	assert.Equal(t, 0, mc.Len())
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mc.now = func() time.Time { now = now.Add(time.Millisecond); return now }

	require.NoError(t, mc.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, mc.Set(ctx, "b", 2, time.Minute))
	var v int
	require.NoError(t, mc.Get(ctx, "a", &v))
	require.NoError(t, mc.Set(ctx, "c", 3, time.Minute))

	assert.ErrorIs(t, mc.Get(ctx, "b", &v), ErrCacheMiss)
	require.NoError(t, mc.Get(ctx, "a", &v))
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, mc.Len())
}

func TestLayeredCacheBackfillsMemory(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryCache()
	lc := newLayered(remote)
	defer lc.Close()

	require.NoError(t, remote.Set(ctx, "k", quote{"TCS.NS", 3900}, time.Minute))

	var got quote
	require.NoError(t, lc.Get(ctx, "k", &got))
	assert.Equal(t, "TCS.NS", got.Symbol)
	assert.Equal(t, 1, lc.memCache.Len())

	require.NoError(t, lc.Delete(ctx, "k"))
	assert.ErrorIs(t, lc.Get(ctx, "k", &got), ErrCacheMiss)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	defer mc.Close()

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"x"}, nil
	}
	for i := 0; i < 3; i++ {
		v, err := GetOrLoad(ctx, mc, "k", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, v)
	}
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err := GetOrLoad(ctx, mc, "other", time.Minute, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	var v int
	assert.ErrorIs(t, mc.Get(ctx, "other", &v), ErrCacheMiss)
}

func TestGenerateKeyWithParams(t *testing.T) {
	assert.Equal(t, "history:AAPL:1y", GenerateKeyWithParams("history", "AAPL", "1y"))
}
