package producer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

const (
	metadataRequestTimeoutMs = 5000
	brokerProbeInterval      = 500 * time.Millisecond
)

var errNoBrokers = errors.New("no brokers in cluster metadata")

// clusterMetadata is the slice of the confluent producer used to probe
// broker availability.
type clusterMetadata interface {
	GetMetadata(topic *string, allTopics bool, timeoutMs int) (*kafka.Metadata, error)
}

// awaitBrokers blocks until at least one broker appears in cluster
// metadata or the timeout elapses. When failOnError is false a timeout
// only logs a warning and startup continues; librdkafka keeps retrying
// the connection in the background.
func awaitBrokers(ctx context.Context, meta clusterMetadata, log *zap.Logger, timeoutSec int, failOnError bool) error {
	log.Info("checking broker availability", zap.Int("timeoutSeconds", timeoutSec))

	if timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
		defer cancel()
	}

	if err := probeBrokers(ctx, meta); err != nil {
		if failOnError {
			return fmt.Errorf("kafka brokers unavailable: %w", err)
		}
		log.Warn("kafka brokers unavailable, starting anyway", zap.Error(err))
		return nil
	}

	log.Info("brokers reachable")
	return nil
}

func probeBrokers(ctx context.Context, meta clusterMetadata) error {
	probe := func() error {
		md, err := meta.GetMetadata(nil, false, metadataRequestTimeoutMs)
		if err != nil {
			return err
		}
		if len(md.Brokers) == 0 {
			return errNoBrokers
		}
		return nil
	}
	return backoff.Retry(probe, backoff.WithContext(backoff.NewConstantBackOff(brokerProbeInterval), ctx))
}
