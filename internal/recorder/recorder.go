package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/Sokol111/ecommerce-storefront/internal/entitystore"
	"github.com/Sokol111/ecommerce-storefront/internal/event"
	"go.uber.org/zap"
)

type entryInfo struct {
	ProductID string  `bson:"productId"`
	Price     float64 `bson:"price"`
}

// logEntry is the persisted event-log layout. TTL is the absolute
// epoch-seconds expiry; ExpiresAt backs the store's TTL index.
type logEntry struct {
	Email     string    `bson:"email"`
	CreatedAt int64     `bson:"createdAt"`
	RequestID string    `bson:"requestId"`
	EventType string    `bson:"eventType"`
	Info      entryInfo `bson:"info"`
	TTL       int64     `bson:"ttl"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// Recorder appends product events to the expiring event log. It owns
// the "#product_" partition namespace exclusively.
//
// Recording is not idempotent: delivering the same event twice yields
// two entries differing only by timestamp. Entries written within the
// same millisecond for one product are unordered relative to each other.
type Recorder interface {
	Record(ctx context.Context, productEvent event.ProductEvent) error
}

type recorder struct {
	store entitystore.Store
	conf  Config
	log   *zap.Logger
	now   func() time.Time
}

func NewRecorder(store entitystore.Store, conf Config, log *zap.Logger) Recorder {
	return &recorder{
		store: store,
		conf:  conf,
		log:   log,
		now:   time.Now,
	}
}

func (r *recorder) Record(ctx context.Context, productEvent event.ProductEvent) error {
	now := r.now()
	timestamp := now.UnixMilli()
	expiresAt := now.Add(r.conf.Retention)

	key := entitystore.Key{
		PK: fmt.Sprintf("#product_%s", productEvent.ProductCode),
		SK: fmt.Sprintf("%s#%d", productEvent.EventType, timestamp),
	}
	entry := logEntry{
		Email:     productEvent.Email,
		CreatedAt: timestamp,
		RequestID: productEvent.RequestID,
		EventType: string(productEvent.EventType),
		Info: entryInfo{
			ProductID: productEvent.ProductID,
			Price:     productEvent.ProductPrice,
		},
		TTL:       expiresAt.Unix(),
		ExpiresAt: expiresAt,
	}

	if err := r.store.Put(ctx, entitystore.EventsCollection, key, entry); err != nil {
		return fmt.Errorf("failed to record %s for %s: %w", productEvent.EventType, productEvent.ProductCode, err)
	}

	r.log.Info("event recorded",
		zap.String("pk", key.PK),
		zap.String("sk", key.SK),
		zap.String("request_id", productEvent.RequestID))
	return nil
}
