package usecase

import (
	"context"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

// Customers are aggregate read-only records; spend and order counts are
// precomputed in the seed and never updated here.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// ListCustomers filters by a case-insensitive name/email search.
func (uc *CustomerUseCase) ListCustomers(ctx context.Context, query string) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx, query)
}
