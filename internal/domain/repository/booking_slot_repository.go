package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type BookingSlotRepository interface {
	Create(ctx context.Context, slot *entity.BookingSlot) error
	GetByID(ctx context.Context, id string) (*entity.BookingSlot, error)
	// ListByProductID returns slots in ascending start-time order.
	ListByProductID(ctx context.Context, productID string) ([]*entity.BookingSlot, error)
	Update(ctx context.Context, slot *entity.BookingSlot) error
	// Delete removes the matching slot, preserving the relative order of
	// the rest; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}
