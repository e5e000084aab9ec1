package repository

import (
	"context"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
)

// All repositories in this package hold their records in process memory.
// State is volatile and lost on restart; handed-out entities are copies
// so callers cannot mutate the store behind the repository's back.

type memoryStoreRepository struct {
	mu     sync.RWMutex
	stores []*entity.Store
}

func NewMemoryStoreRepository(seed []*entity.Store) repository.StoreRepository {
	return &memoryStoreRepository{
		stores: append([]*entity.Store{}, seed...),
	}
}

func (r *memoryStoreRepository) Create(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.stores {
		if s.ID == store.ID {
			return errors.Conflict("Store already exists")
		}
		if s.Slug == store.Slug {
			return errors.Conflict("Store slug already in use")
		}
	}

	clone := *store
	r.stores = append(r.stores, &clone)
	return nil
}

func (r *memoryStoreRepository) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *memoryStoreRepository) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.Slug == slug {
			clone := *s
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *memoryStoreRepository) GetByVendorID(ctx context.Context, vendorID string) (*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.VendorID == vendorID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *memoryStoreRepository) Update(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.stores {
		if s.ID == store.ID {
			clone := *store
			r.stores[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Store", nil)
}

func (r *memoryStoreRepository) List(ctx context.Context) ([]*entity.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Store, 0, len(r.stores))
	for _, s := range r.stores {
		clone := *s
		result = append(result, &clone)
	}
	return result, nil
}
