package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DataLayerQueue implements ports.DataLayerSink as a Redis list. Events are
// RPUSHed as JSON; an external tag-manager bridge drains the list in order.
type DataLayerQueue struct {
	client *goredis.Client
	key    string
	log    zerolog.Logger
}

// NewDataLayerQueue creates a Redis-backed data layer queue.
func NewDataLayerQueue(client *goredis.Client, key string, log zerolog.Logger) *DataLayerQueue {
	return &DataLayerQueue{client: client, key: key, log: log}
}

// Push appends an event to the queue. An empty payload is dropped silently.
func (q *DataLayerQueue) Push(ctx context.Context, event map[string]interface{}) error {
	if len(event) == 0 {
		q.log.Warn().Msg("empty event payload, skipping push")
		return nil
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal data layer event: %w", err)
	}

	if err := q.client.RPush(ctx, q.key, raw).Err(); err != nil {
		return fmt.Errorf("redis data layer push: %w", err)
	}
	return nil
}

// Pending returns the number of undrained events.
func (q *DataLayerQueue) Pending(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis data layer len: %w", err)
	}
	return n, nil
}
