package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher - реализация Publisher, использующая Redis pub/sub
type RedisPublisher struct {
	redisClient *redis.Client
	channel     string
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
		channel:     channel,
	}
}

// Publish публикует событие в канал Redis. Доставка fire-and-forget:
// подписчики, подключившиеся позже, событие не получат.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast event: %w", err)
	}

	if err := p.redisClient.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast event to Redis: %w", err)
	}
	return nil
}
