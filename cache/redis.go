package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	value, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("Redis GET error for key %s: %v", key, err)
		return "", false
	}
	return value, true
}

func (r *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Failed to cache response for key %s: %v", key, err)
	}
}

// Invalidate removes every key under the prefix with a SCAN walk and a
// pipelined DEL, so a burst of mutations never blocks on KEYS.
func (r *Redis) Invalidate(ctx context.Context, prefix string) {
	pattern := prefix + ":*"
	const scanCount = 100

	var keys []string
	var cursor uint64
	for {
		currentKeys, next, err := r.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern %s: %v", pattern, err)
			return
		}
		keys = append(keys, currentKeys...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if len(keys) == 0 {
		return
	}

	pipe := r.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("Error deleting %d cache keys for pattern %s: %v", len(keys), pattern, err)
	}
}
