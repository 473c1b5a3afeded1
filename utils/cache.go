// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tazaticket/config"

	"github.com/go-redis/redis/v8"
)

var (
	// MemoryCacheClient backs the conversation slot store.
	MemoryCacheClient *redis.Client
	// QueueCacheClient points at the DB the delivery queue runs on, for health checks.
	QueueCacheClient *redis.Client
)

// InitMemoryCache initializes the Redis client for conversation state (DB from AppConfig).
func InitMemoryCache() {
	MemoryCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMemoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := MemoryCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Memory): %v", err)
	}
}

// GetMemoryCacheClient returns the conversation-state Redis client.
func GetMemoryCacheClient() *redis.Client {
	if MemoryCacheClient == nil {
		InitMemoryCache()
	}
	return MemoryCacheClient
}

// InitQueueCache initializes the Redis client mirroring the delivery queue DB.
func InitQueueCache() {
	QueueCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := QueueCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Queue): %v", err)
	}
}

// GetQueueCacheClient returns the delivery-queue Redis client.
func GetQueueCacheClient() *redis.Client {
	if QueueCacheClient == nil {
		InitQueueCache()
	}
	return QueueCacheClient
}
