package repository

import (
	"context"
	"sync"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
)

type memoryNotificationRepository struct {
	mu    sync.RWMutex
	feeds map[string][]*entity.Notification // vendorID -> feed, newest first
}

func NewMemoryNotificationRepository(seed map[string][]*entity.Notification) repository.NotificationRepository {
	feeds := make(map[string][]*entity.Notification)
	for vendorID, feed := range seed {
		feeds[vendorID] = append([]*entity.Notification{}, feed...)
	}
	return &memoryNotificationRepository{feeds: feeds}
}

func (r *memoryNotificationRepository) Prepend(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *notification
	r.feeds[notification.VendorID] = append([]*entity.Notification{&clone}, r.feeds[notification.VendorID]...)
	return nil
}

func (r *memoryNotificationRepository) List(ctx context.Context, vendorID string, limit int) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := r.feeds[vendorID]
	if limit <= 0 || limit > len(feed) {
		limit = len(feed)
	}

	result := make([]*entity.Notification, 0, limit)
	for _, n := range feed[:limit] {
		clone := *n
		result = append(result, &clone)
	}
	return result, nil
}
