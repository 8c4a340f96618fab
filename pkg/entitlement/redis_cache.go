package entitlement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const planKeyPrefix = "entitlement:plan:"

// RedisCache caches resolved plans in Redis with a short TTL. A stale hit
// only delays a plan change, so the TTL trades a bounded staleness window
// for one less store round-trip on every entitlement check.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed plan cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, userID uuid.UUID) (Plan, bool) {
	val, err := c.client.Get(ctx, planKeyPrefix+userID.String()).Result()
	if err != nil {
		// redis.Nil and transport errors are both just misses here.
		return "", false
	}

	plan := Plan(val)
	if !plan.IsValid() {
		return "", false
	}
	return plan, true
}

func (c *RedisCache) Set(ctx context.Context, userID uuid.UUID, plan Plan) error {
	return c.client.Set(ctx, planKeyPrefix+userID.String(), string(plan), c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, planKeyPrefix+userID.String()).Err()
}
