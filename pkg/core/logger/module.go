package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// loggerOptions holds internal configuration for the logging module.
type loggerOptions struct {
	loggerConfig *Config
}

// Option is a functional option for configuring the logging module.
type Option func(*loggerOptions)

// WithLoggerConfig provides a static logger Config (useful for tests).
// When set, the logger configuration will not be loaded from viper.
func WithLoggerConfig(cfg Config) Option {
	return func(opts *loggerOptions) {
		opts.loggerConfig = &cfg
	}
}

// NewZapLoggingModule provides a zap logger built from the viper
// "logger" section (or a static config) for dependency injection.
func NewZapLoggingModule(opts ...Option) fx.Option {
	cfg := &loggerOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	configProvider := fx.Provide(newConfig)
	if cfg.loggerConfig != nil {
		static := *cfg.loggerConfig
		configProvider = fx.Provide(func() (Config, error) { return static, nil })
	}

	return fx.Module("logger",
		configProvider,
		fx.Provide(newLogger),
		fx.Invoke(func(lc fx.Lifecycle, logger *zap.Logger) {
			lc.Append(fx.StopHook(func() {
				_ = logger.Sync()
			}))
		}),
	)
}
