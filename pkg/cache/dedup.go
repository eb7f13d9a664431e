package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dedupTTL bounds how long a processed event ID is remembered. Watermill
// redeliveries happen within seconds; a generous window covers worker restarts.
const dedupTTL = 7 * 24 * time.Hour

const dedupKeyPrefix = "catalog:event"

// EventDedup records processed event IDs so at-least-once delivery never
// applies the same event twice. Backed by SET NX with a TTL.
type EventDedup struct {
	client *RedisClient
}

// NewEventDedup creates an EventDedup backed by the given RedisClient.
func NewEventDedup(r *RedisClient) *EventDedup {
	return &EventDedup{client: r}
}

// MarkProcessed atomically records the event ID. Returns true when this call
// was the first to record it — the caller should process the event. Returns
// false when the event was already processed.
func (d *EventDedup) MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error) {
	key := fmt.Sprintf("%s:%s", dedupKeyPrefix, eventID)
	first, err := d.client.Client().SetNX(ctx, key, 1, dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("dedup mark: %w", err)
	}
	return first, nil
}

// Forget removes an event ID, allowing the event to be processed again. Used
// when the handler failed after marking, so the retry is not swallowed.
func (d *EventDedup) Forget(ctx context.Context, eventID uuid.UUID) error {
	key := fmt.Sprintf("%s:%s", dedupKeyPrefix, eventID)
	if err := d.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("dedup forget: %w", err)
	}
	return nil
}
