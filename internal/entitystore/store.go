package entitystore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names owned by the storefront.
const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
	EventsCollection   = "events"
)

// Key is a composite (partition, sort) key. SK may be empty for entities
// keyed by partition alone.
type Key struct {
	PK string
	SK string
}

// Store is a key-value persistence contract with composite keys.
// There are no multi-item transactions; every operation touches one
// collection and last-write-wins across requests.
type Store interface {
	// Get decodes the item under key into out, or ErrItemNotFound.
	Get(ctx context.Context, collection string, key Key, out any) error

	// Put unconditionally writes the item under key (upsert).
	Put(ctx context.Context, collection string, key Key, item any) error

	// BatchGet decodes all found items into out (a pointer to a slice).
	// Missing keys are silently omitted - callers must reconcile by
	// comparing the returned count to the requested count.
	BatchGet(ctx context.Context, collection string, keys []Key, out any) error

	// Scan decodes every item in the collection into out (a pointer to a slice).
	Scan(ctx context.Context, collection string, out any) error

	// Query decodes all items under one partition into out (a pointer to a slice).
	Query(ctx context.Context, collection string, pk string, out any) error

	// ConditionalUpdate sets fields on an item that must already exist,
	// decoding the updated item into out. Returns ErrConditionFailed when
	// the item is absent.
	ConditionalUpdate(ctx context.Context, collection string, key Key, fields bson.M, out any) error

	// Delete removes the item under key, decoding the pre-deletion
	// snapshot into out. Returns ErrItemNotFound when absent.
	Delete(ctx context.Context, collection string, key Key, out any) error
}
