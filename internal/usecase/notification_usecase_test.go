package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/domain/entity"
)

func newNotificationUseCaseForTest() *NotificationUseCase {
	repo := repository.NewMemoryNotificationRepository(nil)
	return NewNotificationUseCase(repo, nil)
}

func TestAddNotificationPrependsNewestFirst(t *testing.T) {
	uc := newNotificationUseCaseForTest()
	ctx := context.Background()

	first, err := uc.AddNotification(ctx, "u1", AddNotificationInput{
		Title:     "First",
		TimeLabel: "Just now",
		Kind:      entity.NotificationOrder,
	})
	require.NoError(t, err)

	second, err := uc.AddNotification(ctx, "u1", AddNotificationInput{
		Title:     "Second",
		TimeLabel: "Just now",
		Kind:      entity.NotificationBooking,
	})
	require.NoError(t, err)

	feed, err := uc.ListNotifications(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, second.ID, feed[0].ID)
	assert.Equal(t, first.ID, feed[1].ID)
}

func TestAddNotificationAssignsID(t *testing.T) {
	uc := newNotificationUseCaseForTest()

	n, err := uc.AddNotification(context.Background(), "u1", AddNotificationInput{
		Title: "Event",
		Kind:  entity.NotificationUpdate,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "u1", n.VendorID)
}

func TestListNotificationsLimit(t *testing.T) {
	uc := newNotificationUseCaseForTest()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := uc.AddNotification(ctx, "u1", AddNotificationInput{
			Title: "Event",
			Kind:  entity.NotificationUpdate,
		})
		require.NoError(t, err)
	}

	feed, err := uc.ListNotifications(ctx, "u1", 5)
	require.NoError(t, err)
	assert.Len(t, feed, 5)

	all, err := uc.ListNotifications(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestListNotificationsIsolatedPerVendor(t *testing.T) {
	uc := newNotificationUseCaseForTest()
	ctx := context.Background()

	_, err := uc.AddNotification(ctx, "u1", AddNotificationInput{Title: "Mine", Kind: entity.NotificationOrder})
	require.NoError(t, err)

	feed, err := uc.ListNotifications(ctx, "u2", 0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}
