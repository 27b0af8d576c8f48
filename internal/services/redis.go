package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// Lookup collections (currencies, estados) change only on reset, so an hour of
// cache is plenty.
const lookupTTL = time.Hour

// InitRedis initializes the Redis client. The server runs fine without Redis;
// lookups just hit Postgres on every request.
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	RedisClient = client
	return nil
}

// CacheLookup stores a lookup collection under lookup:{name}.
func CacheLookup(ctx context.Context, name string, value interface{}) error {
	if RedisClient == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("lookup:%s", name)
	return RedisClient.Set(ctx, key, data, lookupTTL).Err()
}

// GetCachedLookup loads a lookup collection into dst. Returns false when the
// key is absent or Redis is unavailable.
func GetCachedLookup(ctx context.Context, name string, dst interface{}) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}

	key := fmt.Sprintf("lookup:%s", name)
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), dst); err != nil {
		return false, err
	}
	return true, nil
}

// InvalidateLookups drops every cached lookup collection. Called after a
// database reset, which reseeds them.
func InvalidateLookups(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}

	keys, err := RedisClient.Keys(ctx, "lookup:*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return RedisClient.Del(ctx, keys...).Err()
}
