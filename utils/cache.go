package utils

import (
	"context"
	"log"
	"time"

	"gbclean/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient guards against duplicate intake submissions. It is nil when
// REDIS_ADDR is unset; callers must treat that as "guard disabled".
var CacheClient *redis.Client

// InitCache initializes the Redis client when an address is configured.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set; intake duplicate guard disabled")
		return
	}

	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetCacheClient returns the Redis client, or nil when redis is not configured.
func GetCacheClient() *redis.Client {
	return CacheClient
}
