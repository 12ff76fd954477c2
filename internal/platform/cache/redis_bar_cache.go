package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
)

// RedisBarCache is a Redis-backed bar cache for deployments where several
// instances should share one cache. Unlike MemoryBarCache it expires
// entries by TTL; Redis itself bounds memory. All operations are best
// effort: a Redis failure degrades to a cache miss, never to a request
// failure.
type RedisBarCache struct {
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.BarCache = (*RedisBarCache)(nil)

// NewRedisBarCache creates a RedisBarCache. If ttl is 0, it defaults to
// 15 minutes. If namespace is empty, it uses "bars".
func NewRedisBarCache(rdb *redis.Client, ttl time.Duration, namespace string) *RedisBarCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "bars"
	}
	return &RedisBarCache{rdb: rdb, ttl: ttl, namespace: namespace}
}

// Get retrieves and decodes the cached series for key. Corrupted entries
// are deleted and reported as a miss.
func (c *RedisBarCache) Get(ctx context.Context, key string) ([]entity.Bar, bool) {
	b, err := c.rdb.Get(ctx, c.namespace+":"+key).Bytes()
	if err != nil || len(b) == 0 {
		return nil, false
	}
	var out []entity.Bar
	if err := json.Unmarshal(b, &out); err != nil {
		_ = c.rdb.Del(ctx, c.namespace+":"+key).Err()
		return nil, false
	}
	return out, true
}

// Put stores the series under key with the configured TTL.
func (c *RedisBarCache) Put(ctx context.Context, key string, bars []entity.Bar) {
	b, err := json.Marshal(bars)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, c.namespace+":"+key, b, c.ttl).Err()
}
