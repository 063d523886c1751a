package recorder

import (
	"github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/consumer"
	"go.uber.org/fx"
)

// ConsumerName identifies the product-events consumer in the kafka config.
const ConsumerName = "product-events"

// NewRecorderModule wires the recorder and its consumer poll loop.
func NewRecorderModule() fx.Option {
	return fx.Options(
		fx.Provide(
			newConfig,
			NewRecorder,
		),
		consumer.RegisterHandlerAndConsumer(ConsumerName, newHandler),
	)
}
