package consumer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

const pollTimeout = 100 * time.Millisecond

// messageReader reads messages from a subscribed consumer.
type messageReader interface {
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
}

// reader is the poll loop: read, hand to the handler, store the offset.
// Failed messages go to the DLQ and their offset is stored anyway so a
// poison message cannot wedge the partition.
type reader struct {
	consumer messageReader
	offsets  offsetStorer
	handler  Handler
	dlq      DLQHandler
	log      *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newReader(consumer *kafka.Consumer, offsets offsetStorer, handler Handler, dlq DLQHandler, log *zap.Logger) *reader {
	return &reader{
		consumer: consumer,
		offsets:  offsets,
		handler:  handler,
		dlq:      dlq,
		log:      log,
	}
}

func (r *reader) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
		r.log.Info("reader stopped")
	}()
}

func (r *reader) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *reader) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		message, err := r.consumer.ReadMessage(pollTimeout)
		if err != nil {
			var kafkaErr kafka.Error
			if errors.As(err, &kafkaErr) && kafkaErr.Code() == kafka.ErrTimedOut {
				continue
			}
			r.log.Error("failed to read message", zap.Error(err))
			continue
		}

		r.process(ctx, message)
	}
}

func (r *reader) process(ctx context.Context, message *kafka.Message) {
	if err := r.handler.Handle(ctx, message); err != nil {
		r.log.Error("failed to process message",
			zap.String("key", string(message.Key)),
			zap.Int32("partition", message.TopicPartition.Partition),
			zap.Int64("offset", int64(message.TopicPartition.Offset)),
			zap.Error(err))
		r.dlq.SendToDLQ(ctx, message, err)
	}

	if _, err := r.offsets.StoreMessage(message); err != nil {
		r.log.Error("failed to store offset", zap.Error(err))
	}
}
