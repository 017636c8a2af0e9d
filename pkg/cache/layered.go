package cache

import (
	"context"
	"time"
)

// LayeredCache is a two-level cache: L1 in memory, L2 usually Redis.
type LayeredCache struct {
	memCache *MemoryCache
	remote   rawStore
}

// NewLayeredCache puts an in-memory L1 in front of remote.
func NewLayeredCache(remote *RedisCache, opts ...LayeredOption) *LayeredCache {
	return newLayered(remote, opts...)
}

func newLayered(remote rawStore, opts ...LayeredOption) *LayeredCache {
	cfg := &LayeredConfig{
		MemoryMaxSize: 1000,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &LayeredCache{
		memCache: NewMemoryCache(WithMemoryMaxSize(cfg.MemoryMaxSize)),
		remote:   remote,
	}
}

// Set writes through: remote first, then memory.
func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if err := lc.remote.setRaw(ctx, key, data, expiration); err != nil {
		return err
	}
	return lc.memCache.setRaw(ctx, key, data, expiration)
}

func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	if data, _, err := lc.memCache.getRaw(ctx, key); err == nil {
		return decode(data, dest)
	}

	data, ttl, err := lc.remote.getRaw(ctx, key)
	if err != nil {
		return err
	}
	// backfill L1 with the remaining remote TTL
	if ttl > 0 {
		_ = lc.memCache.setRaw(ctx, key, data, ttl)
	}
	return decode(data, dest)
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.memCache.Delete(ctx, keys...)
	return lc.remote.Delete(ctx, keys...)
}

// Close closes both cache layers.
func (lc *LayeredCache) Close() error {
	_ = lc.memCache.Close()
	return lc.remote.Close()
}
