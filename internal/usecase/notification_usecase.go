package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	ws "vendio/internal/infrastructure/websocket"
	"vendio/pkg/logger"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	wsManager        *ws.Manager
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, wsManager *ws.Manager) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		wsManager:        wsManager,
	}
}

type AddNotificationInput struct {
	Title       string
	Description string
	TimeLabel   string
	Kind        entity.NotificationKind
}

// AddNotification assigns a fresh id and inserts the event at the head
// of the vendor's feed. The feed keeps every event for the lifetime of
// the process; there is no dedup and no retention cap.
func (uc *NotificationUseCase) AddNotification(ctx context.Context, vendorID string, input AddNotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		ID:          uuid.NewString(),
		VendorID:    vendorID,
		Title:       input.Title,
		Description: input.Description,
		TimeLabel:   input.TimeLabel,
		Kind:        input.Kind,
	}

	if err := uc.notificationRepo.Prepend(ctx, notification); err != nil {
		return nil, err
	}

	uc.push(vendorID, notification)
	return notification, nil
}

// ListNotifications returns the newest entries first. Dashboard widgets
// read a short prefix (5 by default).
func (uc *NotificationUseCase) ListNotifications(ctx context.Context, vendorID string, limit int) ([]*entity.Notification, error) {
	return uc.notificationRepo.List(ctx, vendorID, limit)
}

func (uc *NotificationUseCase) push(vendorID string, notification *entity.Notification) {
	if uc.wsManager == nil {
		return
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Error("Failed to serialize notification %s: %v", notification.ID, err)
		return
	}
	uc.wsManager.SendToVendor(vendorID, payload)
}
