package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// DLQHandler forwards messages that could not be processed to a dead-letter
// topic for manual inspection.
type DLQHandler interface {
	SendToDLQ(ctx context.Context, message *kafka.Message, processingErr error)
}

type dlqHandler struct {
	producer producer.Producer
	dlqTopic string
	log      *zap.Logger
}

func newDLQHandler(producer producer.Producer, dlqTopic string, log *zap.Logger) DLQHandler {
	if dlqTopic == "" {
		return &noopDLQHandler{log: log}
	}
	return &dlqHandler{
		producer: producer,
		dlqTopic: dlqTopic,
		log:      log,
	}
}

func (h *dlqHandler) SendToDLQ(ctx context.Context, message *kafka.Message, processingErr error) {
	dlqMessage := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &h.dlqTopic,
			Partition: kafka.PartitionAny,
		},
		Key:   message.Key,
		Value: message.Value,
		Headers: append(message.Headers,
			kafka.Header{Key: "dlq.original.topic", Value: []byte(*message.TopicPartition.Topic)},
			kafka.Header{Key: "dlq.original.partition", Value: []byte(fmt.Sprintf("%d", message.TopicPartition.Partition))},
			kafka.Header{Key: "dlq.original.offset", Value: []byte(fmt.Sprintf("%d", message.TopicPartition.Offset))},
			kafka.Header{Key: "dlq.error", Value: []byte(processingErr.Error())},
			kafka.Header{Key: "dlq.timestamp", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		),
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	if err := h.producer.Produce(dlqMessage, deliveryChan); err != nil {
		h.log.Error("failed to send message to DLQ",
			zap.String("dlq_topic", h.dlqTopic),
			zap.String("key", string(message.Key)),
			zap.Error(err))
		return
	}

	e := <-deliveryChan
	m, ok := e.(*kafka.Message)
	if !ok {
		h.log.Error("unexpected event type from delivery channel")
		return
	}
	if m.TopicPartition.Error != nil {
		h.log.Error("failed to deliver message to DLQ",
			zap.String("dlq_topic", h.dlqTopic),
			zap.String("key", string(message.Key)),
			zap.Error(m.TopicPartition.Error))
		return
	}

	h.log.Info("message sent to DLQ",
		zap.String("dlq_topic", h.dlqTopic),
		zap.String("key", string(message.Key)),
		zap.Int32("original_partition", message.TopicPartition.Partition),
		zap.Int64("original_offset", int64(message.TopicPartition.Offset)))
}

// noopDLQHandler logs and drops when no DLQ topic is configured.
type noopDLQHandler struct {
	log *zap.Logger
}

func (h *noopDLQHandler) SendToDLQ(ctx context.Context, message *kafka.Message, processingErr error) {
	h.log.Warn("DLQ topic not configured, dropping failed message",
		zap.String("key", string(message.Key)),
		zap.Int32("partition", message.TopicPartition.Partition),
		zap.Int64("offset", int64(message.TopicPartition.Offset)),
		zap.Error(processingErr))
}
