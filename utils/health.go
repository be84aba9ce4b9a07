package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func snapshotHealth(ctx context.Context, redisClient *redis.Client, mongoClient *mongo.Client) HealthStatus {
	st := HealthStatus{CheckedAt: time.Now()}
	if redisClient != nil {
		st.Redis = redisClient.Ping(ctx).Err() == nil
	}
	if mongoClient != nil {
		st.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	return st
}

func storeHealth(st HealthStatus) {
	healthMu.Lock()
	currentHealth = st
	healthMu.Unlock()
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The first check runs immediately so /health never reports a healthy
// process as down while waiting for the first tick.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		storeHealth(snapshotHealth(ctx, redisClient, mongoClient))

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			storeHealth(snapshotHealth(ctx, redisClient, mongoClient))
		}
	}()
}
