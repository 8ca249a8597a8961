package repository

import (
	"context"

	"shopfront/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	// UpdatePayment stores the gateway reference and authorization URL after a
	// successful initialization.
	UpdatePayment(ctx context.Context, orderID uint64, reference, authorizationURL string) error
	// MarkPaid transitions the payment sub-record of the order carrying the
	// given reference to "paid" and stamps the paid timestamp.
	MarkPaid(ctx context.Context, reference string) (*domain.Order, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByReference(ctx context.Context, reference string) (*domain.Order, error)
	// FindAll returns orders newest-first by id, line items included.
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (*domain.Order, error)
}
