package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort Redis cache for /recommend responses. Failures are
// ignored; the pipeline is always the source of truth.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "reco:" + hex.EncodeToString(sum[:])
}

func (c *Cache) Get(ctx context.Context, query string) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (c *Cache) Set(ctx context.Context, query string, payload []byte) {
	_ = c.rdb.Set(ctx, cacheKey(query), payload, c.ttl).Err()
}
