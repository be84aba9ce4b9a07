// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"slotbook/config"

	"github.com/go-redis/redis/v8"
)

// RealtimeClient is the dedicated client for the per-user realtime channel.
var RealtimeClient *redis.Client

// InitRealtime initializes the Redis client backing the realtime pub/sub channel.
func InitRealtime() {
	RealtimeClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRealtimeDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RealtimeClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Realtime): %v", err)
	}
}

// GetRealtimeClient returns the Redis client for the realtime channel.
func GetRealtimeClient() *redis.Client {
	if RealtimeClient == nil {
		InitRealtime()
	}
	return RealtimeClient
}
