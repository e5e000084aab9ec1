package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type ProductRepository interface {
	// Create inserts at the head of the store's list; catalog listings
	// are most-recently-added-first.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error)
	SearchByName(ctx context.Context, storeID, query string) ([]*entity.Product, error)
}
