package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, query string) ([]*entity.Customer, error)
}
