package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultStream is the stream key used when none is configured
const DefaultStream = "assignment:workflow:events"

// RedisStreamHook appends events to a Redis stream for downstream consumers
type RedisStreamHook struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisStreamHook creates a stream-backed hook
func NewRedisStreamHook(client *redis.Client, stream string) *RedisStreamHook {
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisStreamHook{client: client, stream: stream, maxLen: 10000}
}

// Notify XADDs the event with approximate trimming
func (h *RedisStreamHook) Notify(ctx context.Context, event Event) error {
	_, err := h.client.XAdd(ctx, &redis.XAddArgs{
		Stream: h.stream,
		MaxLen: h.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"request_id":  event.RequestID.String(),
			"state":       event.State,
			"actor_id":    event.ActorID,
			"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339Nano),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish workflow event to %s: %w", h.stream, err)
	}
	return nil
}
