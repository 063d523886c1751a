package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Sokol111/ecommerce-storefront/internal/event"
	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProductSource struct {
	products map[string]ProductInfo
	err      error
}

func (f *fakeProductSource) GetByIDs(ctx context.Context, ids []string) ([]ProductInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	var found []ProductInfo
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			found = append(found, p)
		}
	}
	return found, nil
}

type fakeRepository struct {
	mu     sync.Mutex
	orders map[string]Order

	createErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{orders: map[string]Order{}}
}

func orderMapKey(email, orderID string) string {
	return email + "/" + orderID
}

func (f *fakeRepository) Create(ctx context.Context, order Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[orderMapKey(order.Email, order.ID)] = order
	return nil
}

func (f *fakeRepository) Get(ctx context.Context, email string, orderID string) (Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderMapKey(email, orderID)]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found []Order
	for _, order := range f.orders {
		if order.Email == email {
			found = append(found, order)
		}
	}
	return found, nil
}

func (f *fakeRepository) GetAll(ctx context.Context) ([]Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]Order, 0, len(f.orders))
	for _, order := range f.orders {
		all = append(all, order)
	}
	return all, nil
}

func (f *fakeRepository) Delete(ctx context.Context, email string, orderID string) (Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderMapKey(email, orderID)]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	delete(f.orders, orderMapKey(email, orderID))
	return order, nil
}

type publishedEnvelope struct {
	topic    string
	key      string
	envelope event.Envelope
}

type fakePublisher struct {
	mu        sync.Mutex
	published []publishedEnvelope
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, topic string, key string, envelope event.Envelope) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, publishedEnvelope{topic: topic, key: key, envelope: envelope})
	return nil
}

type emittedRecord struct {
	source     string
	detailType string
	detail     any
}

type fakeEmitter struct {
	emitted []emittedRecord
	err     error
}

func (f *fakeEmitter) Emit(ctx context.Context, source string, detailType string, detail any) error {
	f.emitted = append(f.emitted, emittedRecord{source: source, detailType: detailType, detail: detail})
	return f.err
}

type serviceFixture struct {
	repo     *fakeRepository
	products *fakeProductSource
	pub      *fakePublisher
	auditor  *fakeEmitter
	service  Service
}

func newFixture() *serviceFixture {
	repo := newFakeRepository()
	products := &fakeProductSource{products: map[string]ProductInfo{
		"p1": {ID: "p1", Code: "PROD1", Price: 100},
		"p2": {ID: "p2", Code: "PROD2", Price: 250.5},
	}}
	pub := &fakePublisher{}
	auditor := &fakeEmitter{}
	conf := kafkaconfig.Config{Topics: kafkaconfig.TopicsConfig{OrderEvents: "order-events"}}

	return &serviceFixture{
		repo:     repo,
		products: products,
		pub:      pub,
		auditor:  auditor,
		service:  NewService(repo, products, pub, auditor, conf, zap.NewNop()),
	}
}

func validRequest() OrderRequest {
	return OrderRequest{
		Email:      "a@b.com",
		ProductIDs: []string{"p1", "p2"},
		Payment:    PaymentCash,
		Shipping:   Shipping{Type: ShippingEconomic, Carrier: CarrierPost},
	}
}

func TestService_Create(t *testing.T) {
	t.Run("builds order with snapshots and summed total price", func(t *testing.T) {
		f := newFixture()

		order, err := f.service.Create(context.Background(), "req-1", validRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, order.ID)
		assert.Positive(t, order.CreatedAt)
		assert.InDelta(t, 350.5, order.Billing.TotalPrice, 0.001)
		assert.Equal(t, []ProductSnapshot{
			{Code: "PROD1", Price: 100},
			{Code: "PROD2", Price: 250.5},
		}, order.Products)

		stored, err := f.repo.Get(context.Background(), "a@b.com", order.ID)
		require.NoError(t, err)
		assert.Equal(t, order, stored)
	})

	t.Run("publishes CREATED envelope keyed by email", func(t *testing.T) {
		f := newFixture()

		order, err := f.service.Create(context.Background(), "req-1", validRequest())
		require.NoError(t, err)

		require.Len(t, f.pub.published, 1)
		assert.Equal(t, "order-events", f.pub.published[0].topic)
		assert.Equal(t, "a@b.com", f.pub.published[0].key)
		assert.Equal(t, event.OrderCreated, f.pub.published[0].envelope.EventType)

		var orderEvent event.OrderEvent
		require.NoError(t, f.pub.published[0].envelope.Decode(&orderEvent))
		assert.Equal(t, order.ID, orderEvent.OrderID)
		assert.Equal(t, "req-1", orderEvent.RequestID)
		assert.Equal(t, []string{"PROD1", "PROD2"}, orderEvent.ProductCodes)
	})

	t.Run("missing product emits exactly one audit record and nothing else", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.ProductIDs = []string{"p1", "missing"}

		_, err := f.service.Create(context.Background(), "req-1", req)

		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Empty(t, f.repo.orders)
		assert.Empty(t, f.pub.published)

		require.Len(t, f.auditor.emitted, 1)
		assert.Equal(t, "app.order", f.auditor.emitted[0].source)
		assert.Equal(t, "order", f.auditor.emitted[0].detailType)

		detail, ok := f.auditor.emitted[0].detail.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "PRODUCT_NOT_FOUND", detail["reason"])
		assert.Equal(t, req, detail["orderRequest"])
	})

	t.Run("audit emit failure still returns validation error", func(t *testing.T) {
		f := newFixture()
		f.auditor.err = errors.New("audit bus down")
		req := validRequest()
		req.ProductIDs = []string{"missing"}

		_, err := f.service.Create(context.Background(), "req-1", req)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("snapshot prices are immune to later catalog changes", func(t *testing.T) {
		f := newFixture()

		order, err := f.service.Create(context.Background(), "req-1", validRequest())
		require.NoError(t, err)

		f.products.products["p1"] = ProductInfo{ID: "p1", Code: "PROD1", Price: 99999}

		stored, err := f.repo.Get(context.Background(), "a@b.com", order.ID)
		require.NoError(t, err)
		assert.InDelta(t, 100, stored.Products[0].Price, 0)
		assert.InDelta(t, 350.5, stored.Billing.TotalPrice, 0.001)
	})

	t.Run("persist failure surfaces", func(t *testing.T) {
		f := newFixture()
		f.repo.createErr = errors.New("store down")

		_, err := f.service.Create(context.Background(), "req-1", validRequest())

		assert.ErrorContains(t, err, "store down")
	})

	t.Run("publish failure surfaces even when persist succeeded", func(t *testing.T) {
		f := newFixture()
		f.pub.err = errors.New("broker down")

		_, err := f.service.Create(context.Background(), "req-1", validRequest())

		assert.ErrorContains(t, err, "broker down")
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("deletes then publishes DELETED", func(t *testing.T) {
		f := newFixture()
		order, err := f.service.Create(context.Background(), "req-1", validRequest())
		require.NoError(t, err)
		f.pub.published = nil

		deleted, err := f.service.Delete(context.Background(), "req-2", "a@b.com", order.ID)

		require.NoError(t, err)
		assert.Equal(t, order, deleted)

		require.Len(t, f.pub.published, 1)
		assert.Equal(t, event.OrderDeleted, f.pub.published[0].envelope.EventType)

		_, err = f.repo.Get(context.Background(), "a@b.com", order.ID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("missing order fails without publishing", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Delete(context.Background(), "req-1", "a@b.com", "missing")

		assert.ErrorIs(t, err, ErrOrderNotFound)
		assert.Empty(t, f.pub.published)
	})
}

func TestService_Reads(t *testing.T) {
	f := newFixture()
	first, err := f.service.Create(context.Background(), "req-1", validRequest())
	require.NoError(t, err)

	otherReq := validRequest()
	otherReq.Email = "c@d.com"
	_, err = f.service.Create(context.Background(), "req-2", otherReq)
	require.NoError(t, err)

	t.Run("get by email and id", func(t *testing.T) {
		order, err := f.service.Get(context.Background(), "a@b.com", first.ID)
		require.NoError(t, err)
		assert.Equal(t, first, order)
	})

	t.Run("get by email", func(t *testing.T) {
		found, err := f.service.GetByEmail(context.Background(), "a@b.com")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("get all", func(t *testing.T) {
		all, err := f.service.GetAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
