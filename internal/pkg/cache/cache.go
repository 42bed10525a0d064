package cache

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/foxalbum/foxalbum/internal/pkg/config"
)

var client *redis.Client

// SetupCache initializes the connection to the Redis server backing the sessions
func SetupCache(cfg config.CacheConfig) *redis.Client {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0, // use default DB
	})

	// Test the connection
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Warnf("[Cache] Could not connect to Redis: %v", err)
	} else {
		log.Infof("[Cache] Successfully connected to Redis: %s", pong)
	}

	return client
}

// GetClient returns the Redis client instance, nil before SetupCache
func GetClient() *redis.Client {
	return client
}

// Ping checks the Redis connection
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("cache client not initialized")
	}
	return client.Ping(ctx).Err()
}
