package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/domain/entity"
)

func TestListOrdersByStatus(t *testing.T) {
	uc := NewOrderUseCase(repository.NewMemoryOrderRepository(repository.SeedOrders()))
	ctx := context.Background()

	all, err := uc.ListOrders(ctx, "s1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	paid, err := uc.ListOrders(ctx, "s1", entity.OrderStatusPaid)
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "ORD-8291", paid[0].ID)
}

func TestGetOrder(t *testing.T) {
	uc := NewOrderUseCase(repository.NewMemoryOrderRepository(repository.SeedOrders()))

	order, err := uc.GetOrder(context.Background(), "ORD-8293")
	require.NoError(t, err)
	assert.Equal(t, "Marcus Chen", order.CustomerName)
	assert.Equal(t, 90.0, order.TotalAmount)

	_, err = uc.GetOrder(context.Background(), "ORD-0000")
	require.Error(t, err)
}

func TestListCustomersSearch(t *testing.T) {
	uc := NewCustomerUseCase(repository.NewMemoryCustomerRepository(repository.SeedCustomers()))
	ctx := context.Background()

	all, err := uc.ListCustomers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	matched, err := uc.ListCustomers(ctx, "elena")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "c2", matched[0].ID)

	byEmail, err := uc.ListCustomers(ctx, "startup.io")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "c3", byEmail[0].ID)
}
