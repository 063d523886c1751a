package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sokol111/ecommerce-storefront/internal/entitystore"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
)

// Reader is the read-only slice of the repository, handed to surfaces
// that must not gain write access.
type Reader interface {
	GetByID(ctx context.Context, id string) (Product, error)

	GetAll(ctx context.Context) ([]Product, error)

	// GetByIDs returns the products that exist, silently omitting missing
	// ids. Callers reconcile by comparing counts.
	GetByIDs(ctx context.Context, ids []string) ([]Product, error)
}

type Repository interface {
	Reader

	// Create unconditionally writes the product.
	Create(ctx context.Context, product Product) error

	// Update replaces the mutable attributes of an existing product and
	// returns the updated value, or ErrProductNotFound when absent.
	Update(ctx context.Context, id string, product Product) (Product, error)

	// Delete removes the product and returns the pre-deletion snapshot,
	// or ErrProductNotFound when absent.
	Delete(ctx context.Context, id string) (Product, error)
}

type productItem struct {
	PK    string  `bson:"pk"`
	SK    string  `bson:"sk"`
	Name  string  `bson:"name"`
	Code  string  `bson:"code"`
	Price float64 `bson:"price"`
	Model string  `bson:"model"`
	URL   string  `bson:"url"`
}

func toItem(product Product) productItem {
	return productItem{
		PK:    product.ID,
		Name:  product.Name,
		Code:  product.Code,
		Price: product.Price,
		Model: product.Model,
		URL:   product.URL,
	}
}

func fromItem(item productItem) Product {
	return Product{
		ID:    item.PK,
		Name:  item.Name,
		Code:  item.Code,
		Price: item.Price,
		Model: item.Model,
		URL:   item.URL,
	}
}

type repository struct {
	store entitystore.Store
}

func NewRepository(store entitystore.Store) Repository {
	return &repository{store: store}
}

func productKey(id string) entitystore.Key {
	return entitystore.Key{PK: id}
}

func (r *repository) GetByID(ctx context.Context, id string) (Product, error) {
	var item productItem
	err := r.store.Get(ctx, entitystore.ProductsCollection, productKey(id), &item)
	if errors.Is(err, entitystore.ErrItemNotFound) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return fromItem(item), nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	var items []productItem
	if err := r.store.Scan(ctx, entitystore.ProductsCollection, &items); err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}
	return lo.Map(items, func(item productItem, _ int) Product {
		return fromItem(item)
	}), nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []string) ([]Product, error) {
	keys := lo.Map(ids, func(id string, _ int) entitystore.Key {
		return productKey(id)
	})

	var items []productItem
	if err := r.store.BatchGet(ctx, entitystore.ProductsCollection, keys, &items); err != nil {
		return nil, fmt.Errorf("failed to batch get products: %w", err)
	}
	return lo.Map(items, func(item productItem, _ int) Product {
		return fromItem(item)
	}), nil
}

func (r *repository) Create(ctx context.Context, product Product) error {
	if err := r.store.Put(ctx, entitystore.ProductsCollection, productKey(product.ID), toItem(product)); err != nil {
		return fmt.Errorf("failed to create product %s: %w", product.ID, err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, id string, product Product) (Product, error) {
	fields := bson.M{
		"name":  product.Name,
		"code":  product.Code,
		"price": product.Price,
		"model": product.Model,
		"url":   product.URL,
	}

	var item productItem
	err := r.store.ConditionalUpdate(ctx, entitystore.ProductsCollection, productKey(id), fields, &item)
	if errors.Is(err, entitystore.ErrConditionFailed) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return fromItem(item), nil
}

func (r *repository) Delete(ctx context.Context, id string) (Product, error) {
	var item productItem
	err := r.store.Delete(ctx, entitystore.ProductsCollection, productKey(id), &item)
	if errors.Is(err, entitystore.ErrItemNotFound) {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return fromItem(item), nil
}
