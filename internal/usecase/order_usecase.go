package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

// Orders are a read-only view in this system; there is no mutation path.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// ListOrders returns a store's orders, optionally filtered to one
// status (the orders page tabs: all, pending, completed).
func (uc *OrderUseCase) ListOrders(ctx context.Context, storeID string, status entity.OrderStatus) ([]*entity.Order, error) {
	return uc.orderRepo.ListByStoreID(ctx, storeID, status)
}
