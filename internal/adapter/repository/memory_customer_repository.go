package repository

import (
	"context"
	"strings"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
)

type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []*entity.Customer
}

func NewMemoryCustomerRepository(seed []*entity.Customer) repository.CustomerRepository {
	return &memoryCustomerRepository{
		customers: append([]*entity.Customer{}, seed...),
	}
}

func (r *memoryCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Customer", nil)
}

func (r *memoryCustomerRepository) List(ctx context.Context, query string) ([]*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]*entity.Customer, 0)
	for _, c := range r.customers {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Email), needle) {
			continue
		}
		clone := *c
		result = append(result, &clone)
	}
	return result, nil
}
