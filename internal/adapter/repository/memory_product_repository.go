package repository

import (
	"context"
	"strings"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
}

func NewMemoryProductRepository(seed []*entity.Product) repository.ProductRepository {
	return &memoryProductRepository{
		products: append([]*entity.Product{}, seed...),
	}
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Newest first; catalog listings show the most recently added product
	// at the top.
	clone := *product
	r.products = append([]*entity.Product{&clone}, r.products...)
	return nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *memoryProductRepository) ListByStoreID(ctx context.Context, storeID string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.StoreID == storeID {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *memoryProductRepository) SearchByName(ctx context.Context, storeID, query string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.StoreID != storeID {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) {
			clone := *p
			result = append(result, &clone)
		}
	}
	return result, nil
}
