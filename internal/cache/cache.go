// Package cache keeps listing search results in a local ccache tier backed by
// an optional shared Redis tier. Invalidation bumps a generation counter so
// that every instance stops serving results computed before the change.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/karlseguin/ccache/v3"
	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const (
	keyPrefix     = "parkeasy:search:"
	generationKey = keyPrefix + "gen"
)

type Options struct {
	TTL       time.Duration
	LocalSize int64
}

type SearchCache struct {
	local  *ccache.Cache[[]domain.ListingResult]
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// New builds the cache. rdb may be nil, in which case only the local tier is used.
func New(rdb *redis.Client, opts Options, log logger.Logger) *SearchCache {
	return &SearchCache{
		local:  ccache.New(ccache.Configure[[]domain.ListingResult]().MaxSize(opts.LocalSize)),
		rdb:    rdb,
		ttl:    opts.TTL,
		logger: log,
	}
}

func (c *SearchCache) Get(ctx context.Context, key string) ([]domain.ListingResult, bool) {
	full, ok := c.key(ctx, key)
	if !ok {
		return nil, false
	}

	if item := c.local.Get(full); item != nil && !item.Expired() {
		return item.Value(), true
	}
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, full).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("search cache read failed", logger.String("error", err.Error()))
		}
		return nil, false
	}

	var results []domain.ListingResult
	if err = json.Unmarshal(raw, &results); err != nil {
		c.logger.Warn("search cache entry is corrupt", logger.String("key", full), logger.String("error", err.Error()))
		return nil, false
	}

	c.local.Set(full, results, c.ttl)
	return results, true
}

func (c *SearchCache) Set(ctx context.Context, key string, results []domain.ListingResult) {
	full, ok := c.key(ctx, key)
	if !ok {
		return
	}
	c.local.Set(full, results, c.ttl)

	if c.rdb == nil {
		return
	}

	payload, err := json.Marshal(results)
	if err != nil {
		c.logger.Warn("search cache encode failed", logger.String("error", err.Error()))
		return
	}
	if err = c.rdb.Set(ctx, full, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("search cache write failed", logger.String("error", err.Error()))
	}
}

// Invalidate drops every cached result.
func (c *SearchCache) Invalidate(ctx context.Context) {
	c.local.Clear()

	if c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		c.logger.Error("search cache invalidation failed", logger.String("error", err.Error()))
	}
}

func (c *SearchCache) Close() {
	c.local.Stop()
}

// key prefixes the search key with the current generation. It reports false
// when the generation cannot be read.
func (c *SearchCache) key(ctx context.Context, key string) (string, bool) {
	if c.rdb == nil {
		return keyPrefix + key, true
	}

	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.logger.Warn("search cache generation read failed", logger.String("error", err.Error()))
		return "", false
	}
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + key, true
}
