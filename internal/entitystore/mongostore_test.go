package entitystore

import (
	"context"
	"testing"
	"time"

	"github.com/Sokol111/ecommerce-storefront/pkg/testutil/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type testItem struct {
	PK    string  `bson:"pk"`
	SK    string  `bson:"sk"`
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

// startStore spins up a disposable MongoDB and wires a store against it.
func startStore(t *testing.T) Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	mongoContainer, err := container.StartMongoDBContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = mongoContainer.Terminate(context.Background())
	})

	conf := Config{
		ConnectionString: mongoContainer.ConnectionString,
		Database:         "storefront_test",
		ConnectTimeout:   10 * time.Second,
		QueryTimeout:     10 * time.Second,
	}
	m := &mongo{
		client:   mongoContainer.Client,
		database: mongoContainer.Database("storefront_test"),
		conf:     conf,
	}
	return NewStore(m)
}

func TestMongoStore(t *testing.T) {
	store := startStore(t)
	ctx := context.Background()

	t.Run("put then get round-trips", func(t *testing.T) {
		key := Key{PK: "p1"}
		require.NoError(t, store.Put(ctx, ProductsCollection, key, testItem{Name: "Phone", Price: 1500}))

		var got testItem
		require.NoError(t, store.Get(ctx, ProductsCollection, key, &got))
		assert.Equal(t, "p1", got.PK)
		assert.Equal(t, "Phone", got.Name)
		assert.InDelta(t, 1500, got.Price, 0)
	})

	t.Run("put is an upsert", func(t *testing.T) {
		key := Key{PK: "p-upsert"}
		require.NoError(t, store.Put(ctx, ProductsCollection, key, testItem{Name: "v1"}))
		require.NoError(t, store.Put(ctx, ProductsCollection, key, testItem{Name: "v2"}))

		var got testItem
		require.NoError(t, store.Get(ctx, ProductsCollection, key, &got))
		assert.Equal(t, "v2", got.Name)
	})

	t.Run("get missing item returns ErrItemNotFound", func(t *testing.T) {
		var got testItem
		err := store.Get(ctx, ProductsCollection, Key{PK: "missing"}, &got)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("batch get silently omits missing keys", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, ProductsCollection, Key{PK: "b1"}, testItem{Name: "one"}))
		require.NoError(t, store.Put(ctx, ProductsCollection, Key{PK: "b2"}, testItem{Name: "two"}))

		var items []testItem
		keys := []Key{{PK: "b1"}, {PK: "b2"}, {PK: "b-missing"}}
		require.NoError(t, store.BatchGet(ctx, ProductsCollection, keys, &items))
		assert.Len(t, items, 2)
	})

	t.Run("batch get with no keys returns nothing", func(t *testing.T) {
		var items []testItem
		require.NoError(t, store.BatchGet(ctx, ProductsCollection, nil, &items))
		assert.Empty(t, items)
	})

	t.Run("query returns one partition only", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, OrdersCollection, Key{PK: "a@b.com", SK: "o1"}, testItem{Name: "one"}))
		require.NoError(t, store.Put(ctx, OrdersCollection, Key{PK: "a@b.com", SK: "o2"}, testItem{Name: "two"}))
		require.NoError(t, store.Put(ctx, OrdersCollection, Key{PK: "c@d.com", SK: "o3"}, testItem{Name: "other"}))

		var items []testItem
		require.NoError(t, store.Query(ctx, OrdersCollection, "a@b.com", &items))
		assert.Len(t, items, 2)
	})

	t.Run("conditional update requires existence", func(t *testing.T) {
		key := Key{PK: "cond-1"}
		require.NoError(t, store.Put(ctx, ProductsCollection, key, testItem{Name: "before", Price: 1}))

		var updated testItem
		require.NoError(t, store.ConditionalUpdate(ctx, ProductsCollection, key, bson.M{"name": "after"}, &updated))
		assert.Equal(t, "after", updated.Name)

		var missing testItem
		err := store.ConditionalUpdate(ctx, ProductsCollection, Key{PK: "cond-missing"}, bson.M{"name": "x"}, &missing)
		assert.ErrorIs(t, err, ErrConditionFailed)
	})

	t.Run("delete returns the pre-deletion snapshot", func(t *testing.T) {
		key := Key{PK: "del-1"}
		require.NoError(t, store.Put(ctx, ProductsCollection, key, testItem{Name: "doomed"}))

		var snapshot testItem
		require.NoError(t, store.Delete(ctx, ProductsCollection, key, &snapshot))
		assert.Equal(t, "doomed", snapshot.Name)

		var gone testItem
		err := store.Get(ctx, ProductsCollection, key, &gone)
		assert.ErrorIs(t, err, ErrItemNotFound)

		err = store.Delete(ctx, ProductsCollection, key, &gone)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
