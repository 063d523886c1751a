package consumer

import (
	"context"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
)

// Handler processes a single delivered message. Returning an error routes
// the message to the dead-letter topic; delivery is at-least-once, so
// handlers must tolerate duplicates.
type Handler interface {
	Handle(ctx context.Context, message *kafka.Message) error
}
