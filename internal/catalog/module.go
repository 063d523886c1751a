package catalog

import (
	"go.uber.org/fx"
)

// NewCatalogModule provides the catalog repository and services for
// dependency injection.
func NewCatalogModule() fx.Option {
	return fx.Module("catalog",
		fx.Provide(
			NewRepository,
			func(r Repository) Reader { return r },
			NewAdminService,
			NewQueryService,
		),
	)
}
