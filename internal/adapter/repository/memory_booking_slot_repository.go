package repository

import (
	"context"
	"sort"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/pkg/errors"
)

type memoryBookingSlotRepository struct {
	mu    sync.RWMutex
	slots []*entity.BookingSlot
}

func NewMemoryBookingSlotRepository(seed []*entity.BookingSlot) repository.BookingSlotRepository {
	return &memoryBookingSlotRepository{
		slots: append([]*entity.BookingSlot{}, seed...),
	}
}

func (r *memoryBookingSlotRepository) Create(ctx context.Context, slot *entity.BookingSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *slot
	r.slots = append(r.slots, &clone)
	return nil
}

func (r *memoryBookingSlotRepository) GetByID(ctx context.Context, id string) (*entity.BookingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.slots {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Booking slot", nil)
}

func (r *memoryBookingSlotRepository) ListByProductID(ctx context.Context, productID string) ([]*entity.BookingSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entity.BookingSlot, 0)
	for _, s := range r.slots {
		if s.ProductID == productID {
			clone := *s
			result = append(result, &clone)
		}
	}

	// Ascending start-time order regardless of insertion order. Start
	// times are ISO-8601 strings, so string order is chronological.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (r *memoryBookingSlotRepository) Update(ctx context.Context, slot *entity.BookingSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.slots {
		if s.ID == slot.ID {
			clone := *slot
			r.slots[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Booking slot", nil)
}

func (r *memoryBookingSlotRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Filter keeps the relative order of the remaining slots; an unknown
	// id leaves the list untouched.
	kept := r.slots[:0]
	for _, s := range r.slots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	r.slots = kept
	return nil
}
