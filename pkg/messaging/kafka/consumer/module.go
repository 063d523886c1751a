package consumer

import (
	"context"

	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/producer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RegisterHandlerAndConsumer wires a consumer poll loop for the named
// consumer config, delivering each message to the handler produced by
// handlerConstructor. The constructor result must implement Handler.
func RegisterHandlerAndConsumer(consumerName string, handlerConstructor any) fx.Option {
	return fx.Module(
		consumerName, // unique module name
		fx.Decorate(
			func(log *zap.Logger, consumerConf config.ConsumerConfig) *zap.Logger {
				return log.With(
					zap.String("component", "consumer"),
					zap.String("consumer_name", consumerConf.Name),
					zap.String("topic", consumerConf.Topic),
					zap.String("group_id", consumerConf.GroupID),
				)
			},
		),
		fx.Provide(
			func(conf config.Config) (config.ConsumerConfig, error) {
				return conf.ConsumerByName(consumerName)
			},
			fx.Annotate(
				handlerConstructor,
				fx.As(new(Handler)),
			),
			provideKafkaConsumer,
			provideDLQHandler,
			newReader,
			fx.Private,
		),
		fx.Invoke(startReader),
	)
}

func provideDLQHandler(p producer.Producer, consumerConf config.ConsumerConfig, log *zap.Logger) DLQHandler {
	return newDLQHandler(p, consumerConf.DLQTopic, log)
}

func startReader(lc fx.Lifecycle, r *reader) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.Stop()
			return nil
		},
	})
}
