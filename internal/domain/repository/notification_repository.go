package repository

import (
	"context"

	"vendio/internal/domain/entity"
)

type NotificationRepository interface {
	// Prepend inserts at position 0 of the vendor's feed; the feed is
	// most-recent-first and grows without bound for the session.
	Prepend(ctx context.Context, notification *entity.Notification) error
	// List returns the first limit entries; limit <= 0 means all.
	List(ctx context.Context, vendorID string, limit int) ([]*entity.Notification, error)
}
