package audit

import (
	"go.uber.org/fx"
)

// NewAuditModule provides the audit emitter for dependency injection.
func NewAuditModule() fx.Option {
	return fx.Module("audit",
		fx.Provide(NewEmitter),
	)
}
