package producer

import (
	"context"

	"github.com/Sokol111/ecommerce-storefront/pkg/core/health"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewProducerModule provides the Kafka producer for dependency injection.
func NewProducerModule() fx.Option {
	return fx.Provide(provideProducer)
}

func provideProducer(lc fx.Lifecycle, log *zap.Logger, conf config.Config, readiness health.Readiness) (Producer, error) {
	componentLog := log.With(zap.String("component", "kafka-producer"))

	p, err := newProducer(conf, componentLog)
	if err != nil {
		return nil, err
	}

	markReady := readiness.AddComponent("kafka-producer")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			err := awaitBrokers(ctx, p.producer, componentLog,
				conf.Producer.ReadinessTimeoutSeconds,
				*conf.Producer.FailOnBrokerError,
			)
			if err != nil {
				return err
			}
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			outstanding := p.Flush(conf.Producer.FlushTimeoutMs)
			if outstanding > 0 {
				componentLog.Warn("closing producer with undelivered messages", zap.Int("outstanding", outstanding))
			}
			p.Close()
			return nil
		},
	})

	return p, nil
}
