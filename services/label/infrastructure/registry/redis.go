package registry

import (
	"context"
	"time"

	"github.com/ghuser/labelpress/pkg/cache"
)

const (
	redisRegistryKey = "label:internal-codes"

	// redisRegistryTTL bounds the session scope of the shared registry.
	// Uniqueness is a session guarantee, not durable product data.
	redisRegistryTTL = 24 * time.Hour

	redisOpTimeout = 2 * time.Second
)

// Redis is a Registry shared across instances through a Redis set.
// SADD's reply doubles as the atomic check-and-insert, so the generator's
// uniqueness guarantee holds with concurrent processes minting codes.
//
// Redis errors degrade to the safe side: Add reports false (forcing a
// regenerate) and Contains reports false.
type Redis struct {
	client *cache.RedisClient
}

// NewRedis returns a Redis-backed registry using the shared client.
func NewRedis(client *cache.RedisClient) *Redis {
	return &Redis{client: client}
}

// Add inserts code into the shared set; false when it was already present
// or Redis is unreachable.
func (r *Redis) Add(code string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	added, err := r.client.Client().SAdd(ctx, redisRegistryKey, code).Result()
	if err != nil || added == 0 {
		return false
	}
	r.client.Client().Expire(ctx, redisRegistryKey, redisRegistryTTL)
	return true
}

// Contains reports whether code is in the shared set.
func (r *Redis) Contains(code string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	ok, err := r.client.Client().SIsMember(ctx, redisRegistryKey, code).Result()
	return err == nil && ok
}

// Clear drops the shared set.
func (r *Redis) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	r.client.Client().Del(ctx, redisRegistryKey)
}
