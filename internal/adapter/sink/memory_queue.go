// Package sink provides in-process event sink implementations.
package sink

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// MemoryQueue is an in-memory DataLayerSink: an ordered sequence of event
// objects, lazily created on first push. It backs tests and deployments that
// run without an external queue.
type MemoryQueue struct {
	log zerolog.Logger

	mu     sync.Mutex
	events []map[string]interface{}
}

// NewMemoryQueue creates an empty in-memory queue.
func NewMemoryQueue(log zerolog.Logger) *MemoryQueue {
	return &MemoryQueue{log: log}
}

// Push appends an event to the queue. An empty payload is dropped silently:
// tracking must never fail the caller.
func (q *MemoryQueue) Push(_ context.Context, event map[string]interface{}) error {
	if len(event) == 0 {
		q.log.Warn().Msg("empty event payload, skipping push")
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.events == nil {
		q.events = make([]map[string]interface{}, 0, 16)
	}
	q.events = append(q.events, event)
	return nil
}

// Drain returns all queued events in push order and empties the queue.
func (q *MemoryQueue) Drain() []map[string]interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()

	events := q.events
	q.events = nil
	return events
}

// Len returns the number of queued events.
func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
