package orders

import (
	"context"

	"github.com/Sokol111/ecommerce-storefront/internal/catalog"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

// NewOrdersModule provides the order repository and service for
// dependency injection. The catalog is reached through its read-only
// surface so the order flow can never mutate products.
func NewOrdersModule() fx.Option {
	return fx.Module("orders",
		fx.Provide(
			NewRepository,
			newCatalogProductSource,
			NewService,
		),
	)
}

type catalogProductSource struct {
	reader catalog.Reader
}

func newCatalogProductSource(reader catalog.Reader) ProductSource {
	return &catalogProductSource{reader: reader}
}

func (s *catalogProductSource) GetByIDs(ctx context.Context, ids []string) ([]ProductInfo, error) {
	products, err := s.reader.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return lo.Map(products, func(p catalog.Product, _ int) ProductInfo {
		return ProductInfo{ID: p.ID, Code: p.Code, Price: p.Price}
	}), nil
}
