package pricemods

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"retreatly/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

func SetCache(ctx context.Context, redisClient *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if redisClient == nil {
		return nil // Skip caching if Redis not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	return redisClient.Set(ctx, key, data, ttl).Err()
}

func GetCache(ctx context.Context, redisClient *redis.Client, key string, dest interface{}) error {
	if redisClient == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// InvalidatePriceModCache clears every cached resolution; any CRUD write can
// change what an instance resolves to.
func InvalidatePriceModCache(ctx context.Context, redisClient *redis.Client) error {
	if redisClient == nil {
		return nil
	}

	keys, err := redisClient.Keys(ctx, constants.PATTERN_INVALIDATE_PRICE_MODS_ALL).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return redisClient.Del(ctx, keys...).Err()
	}
	return nil
}
