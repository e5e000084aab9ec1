package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByStoreID(ctx context.Context, storeID string, status entity.OrderStatus) ([]*entity.Order, error)
}
