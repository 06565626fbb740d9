// Package cache provides the Redis-backed cache for generated fallback
// answers. Template replies are cheap to recompute and are never cached.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/asiet-labs/festbot/pkg/chat"
)

const keyPrefix = "festbot:answer:"

// ReplyCache caches generated answers keyed by normalized query. All
// failures degrade to cache misses; a broken Redis never blocks a reply.
type ReplyCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ chat.ReplyCache = (*ReplyCache)(nil)

// NewReplyCache creates a reply cache. A nil client yields a cache that
// always misses, so callers don't need to special-case unconfigured Redis.
func NewReplyCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ReplyCache {
	return &ReplyCache{
		client: client,
		ttl:    ttl,
		logger: logger.Named("cache"),
	}
}

// Get returns the cached answer for the key, if any.
func (c *ReplyCache) Get(ctx context.Context, key string) (string, bool) {
	if c.client == nil || key == "" {
		return "", false
	}

	reply, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", zap.Error(err))
		}
		return "", false
	}
	return reply, true
}

// Set stores the answer under the key. Errors are logged and dropped.
func (c *ReplyCache) Set(ctx context.Context, key, reply string) {
	if c.client == nil || key == "" || reply == "" {
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, reply, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.Error(err))
	}
}
