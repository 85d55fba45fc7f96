// Package redissvc caches derived read views in Redis. The cache is strictly
// best-effort: a nil service or an unreachable Redis degrades to cache misses,
// never to request failures.
package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 30 * time.Second

type RedisService struct {
	rdb *redis.Client
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

// Get returns the cached payload for key, or false on miss or error.
func (s *RedisService) Get(ctx context.Context, key string) ([]byte, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores a payload with the default TTL. Errors are ignored.
func (s *RedisService) Set(ctx context.Context, key string, payload []byte) {
	if s == nil || s.rdb == nil {
		return
	}
	_ = s.rdb.Set(ctx, key, payload, defaultTTL).Err()
}

// Invalidate drops cached keys after a write.
func (s *RedisService) Invalidate(ctx context.Context, keys ...string) {
	if s == nil || s.rdb == nil || len(keys) == 0 {
		return
	}
	_ = s.rdb.Del(ctx, keys...).Err()
}
