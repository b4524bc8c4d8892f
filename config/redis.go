package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis connects the rate-limiter backend. A missing or unreachable
// Redis leaves RedisClient nil and the limiter falls open.
func InitRedis(addr string) {
	if addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("failed to connect to Redis at %s: %v. Rate limiting disabled.", addr, err)
		return
	}
	RedisClient = client
	log.Printf("Redis connected at %s", addr)
}
