package repository

import (
	"context"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
)

// Orders have no mutation path; the repository is a read-only view over
// the seeded records.
type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

func NewMemoryOrderRepository(seed []*entity.Order) repository.OrderRepository {
	return &memoryOrderRepository{
		orders: append([]*entity.Order{}, seed...),
	}
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *memoryOrderRepository) ListByStoreID(ctx context.Context, storeID string, status entity.OrderStatus) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Order, 0)
	for _, o := range r.orders {
		if o.StoreID != storeID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		clone := *o
		result = append(result, &clone)
	}
	return result, nil
}
