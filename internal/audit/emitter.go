package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

type kafkaEmitter struct {
	producer producer.Producer
	topic    string
	log      *zap.Logger
}

func NewEmitter(producer producer.Producer, conf kafkaconfig.Config, log *zap.Logger) Emitter {
	return &kafkaEmitter{
		producer: producer,
		topic:    conf.Topics.Audit,
		log:      log,
	}
}

// Emit is fire-and-forget: it hands the record to the transport without
// waiting for a delivery report. The audit bus is low priority and a lost
// record must not fail the surrounding request.
func (e *kafkaEmitter) Emit(ctx context.Context, source string, detailType string, detail any) error {
	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit detail: %w", err)
	}

	record := Record{
		Source:     source,
		DetailType: detailType,
		Time:       time.Now().UTC(),
		Detail:     detailJSON,
	}
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit record: %w", err)
	}

	message := &kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &e.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(source),
		Value: value,
	}

	if err := e.producer.Produce(message, nil); err != nil {
		return fmt.Errorf("failed to emit audit record: %w", err)
	}

	e.log.Info("audit record emitted",
		zap.String("source", source),
		zap.String("detail_type", detailType))
	return nil
}
