package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sokol111/ecommerce-storefront/internal/entitystore"
	"github.com/samber/lo"
)

type Repository interface {
	// Create unconditionally writes the order.
	Create(ctx context.Context, order Order) error

	// Get returns one order, or ErrOrderNotFound.
	Get(ctx context.Context, email string, orderID string) (Order, error)

	// GetByEmail returns every order placed under one email.
	GetByEmail(ctx context.Context, email string) ([]Order, error)

	GetAll(ctx context.Context) ([]Order, error)

	// Delete removes the order and returns the pre-deletion snapshot,
	// or ErrOrderNotFound.
	Delete(ctx context.Context, email string, orderID string) (Order, error)
}

type billingItem struct {
	Payment    string  `bson:"payment"`
	TotalPrice float64 `bson:"totalPrice"`
}

type shippingItem struct {
	Type    string `bson:"type"`
	Carrier string `bson:"carrier"`
}

type productSnapshotItem struct {
	Code  string  `bson:"code"`
	Price float64 `bson:"price"`
}

type orderItem struct {
	PK        string                `bson:"pk"`
	SK        string                `bson:"sk"`
	CreatedAt int64                 `bson:"createdAt"`
	Billing   billingItem           `bson:"billing"`
	Shipping  shippingItem          `bson:"shipping"`
	Products  []productSnapshotItem `bson:"products"`
}

func toItem(order Order) orderItem {
	return orderItem{
		PK:        order.Email,
		SK:        order.ID,
		CreatedAt: order.CreatedAt,
		Billing: billingItem{
			Payment:    string(order.Billing.Payment),
			TotalPrice: order.Billing.TotalPrice,
		},
		Shipping: shippingItem{
			Type:    string(order.Shipping.Type),
			Carrier: string(order.Shipping.Carrier),
		},
		Products: lo.Map(order.Products, func(p ProductSnapshot, _ int) productSnapshotItem {
			return productSnapshotItem{Code: p.Code, Price: p.Price}
		}),
	}
}

func fromItem(item orderItem) Order {
	return Order{
		Email:     item.PK,
		ID:        item.SK,
		CreatedAt: item.CreatedAt,
		Billing: Billing{
			Payment:    PaymentType(item.Billing.Payment),
			TotalPrice: item.Billing.TotalPrice,
		},
		Shipping: Shipping{
			Type:    ShippingType(item.Shipping.Type),
			Carrier: CarrierType(item.Shipping.Carrier),
		},
		Products: lo.Map(item.Products, func(p productSnapshotItem, _ int) ProductSnapshot {
			return ProductSnapshot{Code: p.Code, Price: p.Price}
		}),
	}
}

type repository struct {
	store entitystore.Store
}

func NewRepository(store entitystore.Store) Repository {
	return &repository{store: store}
}

func orderKey(email string, orderID string) entitystore.Key {
	return entitystore.Key{PK: email, SK: orderID}
}

func (r *repository) Create(ctx context.Context, order Order) error {
	if err := r.store.Put(ctx, entitystore.OrdersCollection, orderKey(order.Email, order.ID), toItem(order)); err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.ID, err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, email string, orderID string) (Order, error) {
	var item orderItem
	err := r.store.Get(ctx, entitystore.OrdersCollection, orderKey(email, orderID), &item)
	if errors.Is(err, entitystore.ErrItemNotFound) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("failed to get order %s: %w", orderID, err)
	}
	return fromItem(item), nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) ([]Order, error) {
	var items []orderItem
	if err := r.store.Query(ctx, entitystore.OrdersCollection, email, &items); err != nil {
		return nil, fmt.Errorf("failed to query orders for %s: %w", email, err)
	}
	return lo.Map(items, func(item orderItem, _ int) Order {
		return fromItem(item)
	}), nil
}

func (r *repository) GetAll(ctx context.Context) ([]Order, error) {
	var items []orderItem
	if err := r.store.Scan(ctx, entitystore.OrdersCollection, &items); err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}
	return lo.Map(items, func(item orderItem, _ int) Order {
		return fromItem(item)
	}), nil
}

func (r *repository) Delete(ctx context.Context, email string, orderID string) (Order, error) {
	var item orderItem
	err := r.store.Delete(ctx, entitystore.OrdersCollection, orderKey(email, orderID), &item)
	if errors.Is(err, entitystore.ErrItemNotFound) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	return fromItem(item), nil
}
