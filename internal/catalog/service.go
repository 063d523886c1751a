package catalog

import (
	"context"

	"github.com/Sokol111/ecommerce-storefront/internal/event"
	"github.com/Sokol111/ecommerce-storefront/internal/event/publisher"
	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Actor identifies who triggered a mutation and the request it belongs to.
type Actor struct {
	Email     string
	RequestID string
}

// AdminService is the write surface of the catalog. Every successful
// mutation emits a product event envelope.
type AdminService interface {
	Create(ctx context.Context, actor Actor, product Product) (Product, error)
	Update(ctx context.Context, actor Actor, id string, product Product) (Product, error)
	Delete(ctx context.Context, actor Actor, id string) (Product, error)
}

// QueryService is the read surface, deliberately constructed over the
// read-only repository slice so it cannot mutate the catalog.
type QueryService interface {
	GetByID(ctx context.Context, id string) (Product, error)
	GetAll(ctx context.Context) ([]Product, error)
}

type adminService struct {
	repo      Repository
	publisher publisher.Publisher
	topic     string
	log       *zap.Logger
}

func NewAdminService(repo Repository, pub publisher.Publisher, conf kafkaconfig.Config, log *zap.Logger) AdminService {
	return &adminService{
		repo:      repo,
		publisher: pub,
		topic:     conf.Topics.ProductEvents,
		log:       log,
	}
}

// Create persists the product and publishes the CREATED envelope
// concurrently. There is no atomicity between the two: a failure of one
// leg does not roll back the other.
func (s *adminService) Create(ctx context.Context, actor Actor, product Product) (Product, error) {
	product.ID = uuid.NewString()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repo.Create(gctx, product)
	})
	g.Go(func() error {
		return s.publishEvent(gctx, actor, product, event.ProductCreated)
	})
	if err := g.Wait(); err != nil {
		return Product{}, err
	}

	s.log.Info("product created", zap.String("id", product.ID), zap.String("code", product.Code))
	return product, nil
}

// Update is conditional on existence and emits UPDATED only on success.
func (s *adminService) Update(ctx context.Context, actor Actor, id string, product Product) (Product, error) {
	updated, err := s.repo.Update(ctx, id, product)
	if err != nil {
		return Product{}, err
	}

	if err := s.publishEvent(ctx, actor, updated, event.ProductUpdated); err != nil {
		return Product{}, err
	}

	s.log.Info("product updated", zap.String("id", updated.ID), zap.String("code", updated.Code))
	return updated, nil
}

// Delete is conditional on existence, returns the pre-deletion snapshot
// and emits DELETED only on success.
func (s *adminService) Delete(ctx context.Context, actor Actor, id string) (Product, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if err := s.publishEvent(ctx, actor, deleted, event.ProductDeleted); err != nil {
		return Product{}, err
	}

	s.log.Info("product deleted", zap.String("id", deleted.ID), zap.String("code", deleted.Code))
	return deleted, nil
}

func (s *adminService) publishEvent(ctx context.Context, actor Actor, product Product, eventType event.Type) error {
	productEvent := event.ProductEvent{
		Email:        actor.Email,
		EventType:    eventType,
		ProductCode:  product.Code,
		ProductID:    product.ID,
		ProductPrice: product.Price,
		RequestID:    actor.RequestID,
	}
	envelope, err := event.NewEnvelope(eventType, productEvent)
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, s.topic, product.Code, envelope)
}

type queryService struct {
	reader Reader
}

func NewQueryService(reader Reader) QueryService {
	return &queryService{reader: reader}
}

func (s *queryService) GetByID(ctx context.Context, id string) (Product, error) {
	return s.reader.GetByID(ctx, id)
}

func (s *queryService) GetAll(ctx context.Context) ([]Product, error) {
	return s.reader.GetAll(ctx)
}
