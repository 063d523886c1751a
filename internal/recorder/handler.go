package recorder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sokol111/ecommerce-storefront/internal/event"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

// handler consumes product event envelopes and appends them to the log.
// A failed or undecodable message is routed to the dead-letter topic by
// the surrounding reader; the handler itself never retries.
type handler struct {
	recorder Recorder
	log      *zap.Logger
}

func newHandler(recorder Recorder, log *zap.Logger) *handler {
	return &handler{recorder: recorder, log: log}
}

func (h *handler) Handle(ctx context.Context, message *kafka.Message) error {
	var envelope event.Envelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal envelope: %w", err)
	}

	switch envelope.EventType {
	case event.ProductCreated, event.ProductUpdated, event.ProductDeleted:
		var productEvent event.ProductEvent
		if err := envelope.Decode(&productEvent); err != nil {
			return err
		}
		return h.recorder.Record(ctx, productEvent)
	default:
		return fmt.Errorf("unexpected event type %q", envelope.EventType)
	}
}
