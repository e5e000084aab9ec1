package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type DisputeRepository interface {
	List(ctx context.Context) ([]*entity.Dispute, error)
}
