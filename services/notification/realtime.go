package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// realtimeChannelPrefix namespaces per-user channels on the shared Redis.
const realtimeChannelPrefix = "rt:"

// RedisRealtimePublisher pushes events over Redis Pub/Sub, one channel per
// user. Any broker-backed implementation can replace it; the dispatcher only
// sees the RealtimePublisher interface.
type RedisRealtimePublisher struct {
	client *redis.Client
}

func NewRedisRealtimePublisher(client *redis.Client) *RedisRealtimePublisher {
	return &RedisRealtimePublisher{client: client}
}

// Publish marshals the event and publishes it on the recipient's channel.
// Zero subscribers is not an error; that is the "recipient not connected" case.
func (p *RedisRealtimePublisher) Publish(ctx context.Context, userID string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal realtime event: %w", err)
	}
	if err := p.client.Publish(ctx, realtimeChannelPrefix+userID, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish realtime event: %w", err)
	}
	return nil
}
