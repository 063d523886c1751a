package health

import (
	"go.uber.org/fx"
)

// NewReadinessModule provides readiness tracking for dependency injection.
func NewReadinessModule() fx.Option {
	return fx.Module("readiness",
		fx.Provide(NewReadiness),
	)
}
