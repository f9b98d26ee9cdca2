package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"hrservice/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaRelay forwards bus events to a Kafka topic, keyed by the entity they
// reference so that events of one entity keep their order in a partition.
type KafkaRelay struct {
	writer messageWriter
}

type envelope struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
	EntityID   string    `json:"entity_id,omitempty"`
}

// writeBatchTimeout bounds how long a single event waits for its batch to fill.
const writeBatchTimeout = 5 * time.Millisecond

func NewKafkaRelay(brokers []string, topic string) (*KafkaRelay, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka relay requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka relay requires a topic")
	}
	return &KafkaRelay{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			BatchTimeout: writeBatchTimeout,
		},
	}, nil
}

func (k *KafkaRelay) Register(r domain.EventRegistrar, names ...domain.EventName) error {
	for _, n := range names {
		if err := r.Register(n, k.Handle); err != nil {
			return err
		}
	}
	return nil
}

func (k *KafkaRelay) Handle(ctx context.Context, e domain.Event) error {
	env := envelope{
		ID:         e.ID,
		Name:       string(e.Name),
		OccurredAt: e.OccurredAt,
	}
	if p, ok := e.Payload.(domain.Identifiable); ok {
		env.EntityID = p.EntityID()
	}

	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.ID, err)
	}

	key := env.EntityID
	if key == "" {
		key = e.ID
	}
	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  e.OccurredAt,
	}); err != nil {
		return fmt.Errorf("relay event %s: %w", e.ID, err)
	}
	return nil
}

func (k *KafkaRelay) Close() error {
	return k.writer.Close()
}
