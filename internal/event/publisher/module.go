package publisher

import (
	"go.uber.org/fx"
)

// NewPublisherModule provides the envelope publisher for dependency injection.
func NewPublisherModule() fx.Option {
	return fx.Module("publisher",
		fx.Provide(NewPublisher),
	)
}
