package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopfront/internal/domain"
	"shopfront/internal/infra/paystack"
	rabbit "shopfront/internal/infra/rabbitmq"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("no items provided")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrPaymentInit   = errors.New("payment initialization failed")
)

// fallback when the customer left no email; the gateway requires one.
const fallbackEmail = "noemail@gmail.com"

type CheckoutResult struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference"`
}

type OrderService struct {
	repo      repository.OrderRepository
	gateway   paystack.GatewayInterface
	publisher rabbit.PublisherInterface
	baseURL   string
	log       *zap.SugaredLogger
}

func NewOrderService(r repository.OrderRepository, g paystack.GatewayInterface, pub rabbit.PublisherInterface, baseURL string, log *zap.SugaredLogger) *OrderService {
	return &OrderService{
		repo:      r,
		gateway:   g,
		publisher: pub,
		baseURL:   baseURL,
		log:       log,
	}
}

// CreateOrder persists a pending order for the given line items, initializes a
// gateway transaction for the computed total, and returns the hosted payment
// URL. The total is computed from the client-supplied price/quantity pairs;
// there is no re-pricing against the catalog. If gateway initialization fails
// the already-persisted order remains pending.
func (u *OrderService) CreateOrder(ctx context.Context, items []domain.OrderItem, customer domain.Customer) (*CheckoutResult, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	for _, it := range items {
		if it.Quantity < 1 || it.Price < 0 {
			return nil, ErrInvalidItem
		}
	}

	order := &domain.Order{
		Items:    items,
		Total:    domain.TotalOf(items),
		Customer: customer,
		Paystack: domain.Payment{Status: domain.PaymentPending},
		Status:   "pending",
	}

	if err := u.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	email := customer.Email
	if email == "" {
		email = fallbackEmail
	}

	init, err := u.gateway.Initialize(ctx, paystack.InitializeRequest{
		Amount:      order.Total * 100,
		Email:       email,
		Reference:   uuid.NewString(),
		CallbackURL: fmt.Sprintf("%s/success.html?ref=%d", u.baseURL, order.ID),
		Metadata:    map[string]any{"order_id": order.ID},
	})
	if err != nil {
		u.log.Errorw("paystack initialize failed", "orderId", order.ID, "error", err)
		return nil, ErrPaymentInit
	}

	if err := u.repo.UpdatePayment(ctx, order.ID, init.Reference, init.AuthorizationURL); err != nil {
		return nil, err
	}

	go u.publishEvent(context.Background(), "order.created", domain.OrderCreatedEvent{
		OrderID:   order.ID,
		Total:     order.Total,
		Reference: init.Reference,
		CreatedAt: order.CreatedAt,
	})

	return &CheckoutResult{
		AuthorizationURL: init.AuthorizationURL,
		Reference:        init.Reference,
	}, nil
}

// ReconcileWebhook handles a gateway webhook event. Only charge.success is
// acted on, and never on the payload's own claim: the transaction is
// re-verified against the gateway before the order is marked paid. Anything
// else is a no-op.
func (u *OrderService) ReconcileWebhook(ctx context.Context, event paystack.Event) error {
	if event.Event != paystack.EventChargeSuccess {
		return nil
	}

	verification, err := u.gateway.Verify(ctx, event.Data.Reference)
	if err != nil {
		return err
	}
	if !verification.Success {
		u.log.Warnw("webhook claimed success but verification disagreed", "reference", event.Data.Reference)
		return nil
	}

	order, err := u.repo.MarkPaid(ctx, event.Data.Reference)
	if err != nil {
		return err
	}
	if order == nil {
		u.log.Warnw("verified payment has no matching order", "reference", event.Data.Reference)
		return nil
	}

	u.log.Infow("order marked paid", "orderId", order.ID, "reference", event.Data.Reference)

	paidAt := time.Now()
	if order.Paystack.PaidAt != nil {
		paidAt = *order.Paystack.PaidAt
	}
	go u.publishEvent(context.Background(), "payment.confirmed", domain.PaymentConfirmedEvent{
		OrderID:   order.ID,
		Reference: event.Data.Reference,
		PaidAt:    paidAt,
	})

	return nil
}

// VerifyReference queries the gateway directly and returns its payload
// untouched; the stored order state is not consulted.
func (u *OrderService) VerifyReference(ctx context.Context, reference string) (*paystack.VerifyResult, error) {
	return u.gateway.Verify(ctx, reference)
}

func (u *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return u.repo.FindAll(ctx)
}

func (u *OrderService) GetOrderByReference(ctx context.Context, reference string) (*domain.Order, error) {
	o, err := u.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateOrderStatus overwrites the free-text status field unconditionally;
// there is no state machine over it.
func (u *OrderService) UpdateOrderStatus(ctx context.Context, id uint64, status string) (*domain.Order, error) {
	o, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderService) publishEvent(ctx context.Context, routingKey string, data any) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, routingKey, data); err != nil {
		u.log.Errorw("failed to publish event", "routingKey", routingKey, "error", err)
	}
}
