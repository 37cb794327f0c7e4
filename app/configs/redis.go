package configs

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// OpenRedis builds the Redis client for the response cache. The cache is
// best-effort, so an unreachable Redis is logged but never fatal; the client
// is returned anyway and requests degrade to cache misses.
func OpenRedis(ctx context.Context, env ENV) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable at %s: %v (responses will not be cached)", env.RedisAddr, err)
	} else {
		log.Println("✅ Redis connected.")
	}
	return client
}
