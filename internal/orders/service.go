package orders

import (
	"context"
	"time"

	"github.com/Sokol111/ecommerce-storefront/internal/audit"
	"github.com/Sokol111/ecommerce-storefront/internal/event"
	"github.com/Sokol111/ecommerce-storefront/internal/event/publisher"
	kafkaconfig "github.com/Sokol111/ecommerce-storefront/pkg/messaging/kafka/config"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProductInfo is the slice of a catalog product the order flow needs.
type ProductInfo struct {
	ID    string
	Code  string
	Price float64
}

// ProductSource resolves product ids against the catalog. Missing ids
// are silently omitted from the result.
type ProductSource interface {
	GetByIDs(ctx context.Context, ids []string) ([]ProductInfo, error)
}

type Service interface {
	// Create validates the referenced products, persists the order and
	// publishes the CREATED envelope concurrently. A missing product
	// emits exactly one audit record and returns ErrProductNotFound
	// without persisting or publishing anything.
	Create(ctx context.Context, requestID string, req OrderRequest) (Order, error)

	Get(ctx context.Context, email string, orderID string) (Order, error)
	GetByEmail(ctx context.Context, email string) ([]Order, error)
	GetAll(ctx context.Context) ([]Order, error)

	// Delete removes the order, then publishes the DELETED envelope.
	Delete(ctx context.Context, requestID string, email string, orderID string) (Order, error)
}

type service struct {
	repo     Repository
	products ProductSource
	pub      publisher.Publisher
	auditor  audit.Emitter
	topic    string
	log      *zap.Logger
}

func NewService(
	repo Repository,
	products ProductSource,
	pub publisher.Publisher,
	auditor audit.Emitter,
	conf kafkaconfig.Config,
	log *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		products: products,
		pub:      pub,
		auditor:  auditor,
		topic:    conf.Topics.OrderEvents,
		log:      log,
	}
}

func (s *service) Create(ctx context.Context, requestID string, req OrderRequest) (Order, error) {
	found, err := s.products.GetByIDs(ctx, req.ProductIDs)
	if err != nil {
		return Order{}, err
	}

	if len(found) != len(req.ProductIDs) {
		s.log.Warn("order rejected, some product was not found",
			zap.String("email", req.Email),
			zap.Int("requested", len(req.ProductIDs)),
			zap.Int("found", len(found)))

		detail := map[string]any{
			"reason":       audit.ReasonProductNotFound,
			"orderRequest": req,
		}
		if err := s.auditor.Emit(ctx, audit.OrderSource, audit.OrderDetailType, detail); err != nil {
			s.log.Error("failed to emit audit record", zap.Error(err))
		}
		return Order{}, ErrProductNotFound
	}

	order := buildOrder(req, found)

	// Persist and publish run in parallel with no atomicity between
	// them. If one leg fails the other is not rolled back.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repo.Create(gctx, order)
	})
	g.Go(func() error {
		return s.publishEvent(gctx, order, event.OrderCreated, requestID)
	})
	if err := g.Wait(); err != nil {
		return Order{}, err
	}

	s.log.Info("order created", zap.String("id", order.ID), zap.String("email", order.Email))
	return order, nil
}

func (s *service) Get(ctx context.Context, email string, orderID string) (Order, error) {
	return s.repo.Get(ctx, email, orderID)
}

func (s *service) GetByEmail(ctx context.Context, email string) ([]Order, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) GetAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) Delete(ctx context.Context, requestID string, email string, orderID string) (Order, error) {
	deleted, err := s.repo.Delete(ctx, email, orderID)
	if err != nil {
		return Order{}, err
	}

	if err := s.publishEvent(ctx, deleted, event.OrderDeleted, requestID); err != nil {
		return Order{}, err
	}

	s.log.Info("order deleted", zap.String("id", deleted.ID), zap.String("email", deleted.Email))
	return deleted, nil
}

func buildOrder(req OrderRequest, products []ProductInfo) Order {
	return Order{
		Email:     req.Email,
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UnixMilli(),
		Billing: Billing{
			Payment: req.Payment,
			TotalPrice: lo.SumBy(products, func(p ProductInfo) float64 {
				return p.Price
			}),
		},
		Shipping: req.Shipping,
		Products: lo.Map(products, func(p ProductInfo, _ int) ProductSnapshot {
			return ProductSnapshot{Code: p.Code, Price: p.Price}
		}),
	}
}

func (s *service) publishEvent(ctx context.Context, order Order, eventType event.Type, requestID string) error {
	orderEvent := event.OrderEvent{
		Email:   order.Email,
		OrderID: order.ID,
		Billing: event.OrderBilling{
			Payment:    string(order.Billing.Payment),
			TotalPrice: order.Billing.TotalPrice,
		},
		Shipping: event.OrderShipping{
			Type:    string(order.Shipping.Type),
			Carrier: string(order.Shipping.Carrier),
		},
		RequestID: requestID,
		ProductCodes: lo.Map(order.Products, func(p ProductSnapshot, _ int) string {
			return p.Code
		}),
	}
	envelope, err := event.NewEnvelope(eventType, orderEvent)
	if err != nil {
		return err
	}
	return s.pub.Publish(ctx, s.topic, order.Email, envelope)
}
