// Package cache provides an optional Redis-backed cache for computed
// summaries, so a forced refresh does not re-summarize articles that
// have not changed.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "finshorts:summary:"

// SummaryCache caches summaries by article id. A nil *SummaryCache is
// valid and caches nothing, so callers never have to branch on whether
// Redis is configured.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis at addr. An empty addr disables the cache.
func New(addr string, ttl time.Duration) *SummaryCache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached summary for an article id, if present.
func (c *SummaryCache) Get(ctx context.Context, id string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, keyPrefix+id).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithFields(log.Fields{
				"id":    id,
				"error": err,
			}).Warn("Summary cache read failed")
		}
		return "", false
	}
	return val, true
}

// Set stores a summary. Failures are logged and ignored; the cache is
// best-effort.
func (c *SummaryCache) Set(ctx context.Context, id, summary string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, keyPrefix+id, summary, c.ttl).Err(); err != nil {
		log.WithFields(log.Fields{
			"id":    id,
			"error": err,
		}).Warn("Summary cache write failed")
	}
}

func (c *SummaryCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
