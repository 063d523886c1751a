package token

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewTokenModule provides the token validator for dependency injection.
func NewTokenModule() fx.Option {
	return fx.Module("token",
		fx.Provide(newConfig),
		fx.Provide(func(cfg Config, log *zap.Logger) (Validator, error) {
			if !*cfg.Enabled {
				log.Warn("token validation disabled, using noop validator")
				return noopValidator{}, nil
			}
			return newTokenValidator(cfg)
		}),
	)
}
