package repository

import (
	"context"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

type memoryDisputeRepository struct {
	mu       sync.RWMutex
	disputes []*entity.Dispute
}

func NewMemoryDisputeRepository(seed []*entity.Dispute) repository.DisputeRepository {
	return &memoryDisputeRepository{
		disputes: append([]*entity.Dispute{}, seed...),
	}
}

func (r *memoryDisputeRepository) List(ctx context.Context) ([]*entity.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.Dispute, 0, len(r.disputes))
	for _, d := range r.disputes {
		clone := *d
		result = append(result, &clone)
	}
	return result, nil
}
