package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sokol111/ecommerce-storefront/internal/event"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// Publisher emits event envelopes onto a topic. Fire-and-forget from the
// caller's perspective: a returned error means delivery failed, but there
// is no acknowledgment back to the originating mutation beyond that.
type Publisher interface {
	Publish(ctx context.Context, topic string, key string, envelope event.Envelope) error
}

type kafkaPublisher struct {
	producer producer.Producer
	log      *zap.Logger
}

func NewPublisher(producer producer.Producer, log *zap.Logger) Publisher {
	return &kafkaPublisher{producer: producer, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, envelope event.Envelope) error {
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(envelope.EventType)},
		},
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	if err := p.producer.Produce(message, deliveryChan); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", envelope.EventType, topic, err)
	}

	// The delivery report always arrives, so block for it instead of
	// racing ctx against a channel librdkafka still writes to.
	e := <-deliveryChan
	m, ok := e.(*kafka.Message)
	if !ok {
		return fmt.Errorf("unexpected event type from delivery channel")
	}
	if m.TopicPartition.Error != nil {
		return fmt.Errorf("failed to deliver %s to %s: %w", envelope.EventType, topic, m.TopicPartition.Error)
	}

	p.log.Debug("event published",
		zap.String("topic", topic),
		zap.String("event_type", string(envelope.EventType)),
		zap.String("key", key))
	return nil
}
