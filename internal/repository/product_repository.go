package repository

import (
	"context"

	"shopfront/internal/domain"
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, products []domain.Product) error
	// ReplaceAll wipes the catalog and inserts the given products.
	ReplaceAll(ctx context.Context, products []domain.Product) error
}
