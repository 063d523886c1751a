package entitystore

import (
	"context"

	"github.com/Sokol111/ecommerce-storefront/pkg/core/health"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewEntityStoreModule provides the mongo-backed store for dependency injection.
func NewEntityStoreModule() fx.Option {
	return fx.Module("entitystore",
		fx.Provide(
			newConfig,
			provideMongo,
			NewStore,
		),
	)
}

func provideMongo(lc fx.Lifecycle, log *zap.Logger, conf Config, readiness health.Readiness) (Mongo, error) {
	m, err := newMongo(log, conf)
	if err != nil {
		return nil, err
	}

	markReady := readiness.AddComponent("mongo")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := m.connect(ctx); err != nil {
				return err
			}
			if err := runMigrations(conf, log); err != nil {
				return err
			}
			markReady()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return m.disconnect(ctx)
		},
	})

	return m, nil
}
