// Package cache holds the redis-backed search cache. Search responses
// are snapshots anyway, so serving one a little stale is fine; every
// cache failure degrades to a direct database read.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type SearchCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSearchCache(addr string, ttl time.Duration, log logger.Logger) *SearchCache {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return &SearchCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *SearchCache) Get(ctx context.Context, key string) ([]domain.SearchResult, bool) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("search cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var results []domain.SearchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false
	}
	return results, true
}

func (c *SearchCache) Set(ctx context.Context, key string, results []domain.SearchResult) {
	raw, err := json.Marshal(results)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("search cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (c *SearchCache) Close() error {
	return c.rdb.Close()
}
