package entitystore

import (
	"context"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the subset of the mongo collection API the store uses.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongodriver.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongodriver.Cursor, error)
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongodriver.UpdateResult, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongodriver.SingleResult
	FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongodriver.SingleResult
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	Name() string
}

// collectionWrapper applies the configured query timeout to every call.
type collectionWrapper struct {
	coll    *mongodriver.Collection
	timeout time.Duration
}

func newCollectionWrapper(coll *mongodriver.Collection, timeout time.Duration) Collection {
	return &collectionWrapper{coll: coll, timeout: timeout}
}

func (w *collectionWrapper) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, w.timeout)
}

func (w *collectionWrapper) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongodriver.SingleResult {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.FindOne(ctx, filter, opts...)
}

// Find does not apply the query timeout: cancelling the context after
// returning would invalidate the server-side cursor mid-iteration.
func (w *collectionWrapper) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongodriver.Cursor, error) {
	return w.coll.Find(ctx, filter, opts...)
}

func (w *collectionWrapper) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongodriver.UpdateResult, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.ReplaceOne(ctx, filter, replacement, opts...)
}

func (w *collectionWrapper) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongodriver.SingleResult {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.FindOneAndUpdate(ctx, filter, update, opts...)
}

func (w *collectionWrapper) FindOneAndDelete(ctx context.Context, filter interface{}, opts ...*options.FindOneAndDeleteOptions) *mongodriver.SingleResult {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.FindOneAndDelete(ctx, filter, opts...)
}

func (w *collectionWrapper) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.CountDocuments(ctx, filter, opts...)
}

func (w *collectionWrapper) Name() string {
	return w.coll.Name()
}
