package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// messageWriter captures the kafka.Writer surface the queue uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaQueue implements ports.DataLayerSink by producing payloads to a topic.
type KafkaQueue struct {
	writer messageWriter
	topic  string
	log    zerolog.Logger
}

// NewKafkaQueue creates a Kafka-backed data-layer queue.
func NewKafkaQueue(brokers []string, topic string, log zerolog.Logger) *KafkaQueue {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaQueue{writer: writer, topic: topic, log: log}
}

// Push produces one analytics payload. Empty payloads are dropped.
func (q *KafkaQueue) Push(ctx context.Context, payload map[string]interface{}) error {
	if len(payload) == 0 {
		q.log.Warn().Msg("data layer: dropping empty payload")
		return nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal data layer payload: %w", err)
	}

	msg := kafka.Message{Value: data}
	if event, ok := payload["event"].(string); ok {
		msg.Key = []byte(event)
	}

	if err := q.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("produce data layer payload: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (q *KafkaQueue) Close() error {
	return q.writer.Close()
}
