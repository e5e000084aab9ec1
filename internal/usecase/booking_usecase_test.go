package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/domain/entity"
	"vendio/internal/infrastructure/ratelimit"
	"vendio/pkg/errors"
)

func newBookingUseCaseForTest(t *testing.T) (*BookingUseCase, *NotificationUseCase) {
	t.Helper()

	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	slotRepo := repository.NewMemoryBookingSlotRepository(repository.SeedBookingSlots())
	storeRepo := repository.NewMemoryStoreRepository(repository.SeedStores())
	notificationUseCase := NewNotificationUseCase(repository.NewMemoryNotificationRepository(nil), nil)

	uc := NewBookingUseCase(productRepo, slotRepo, storeRepo, notificationUseCase, ratelimit.NewRateLimiter(), time.Millisecond)
	return uc, notificationUseCase
}

func TestBookingWorkflowHappyPath(t *testing.T) {
	uc, notifications := newBookingUseCaseForTest(t)
	ctx := context.Background()

	wf, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	assert.Equal(t, StateProductSelected, wf.State)

	wf, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)
	assert.Equal(t, StateSlotSelected, wf.State)
	assert.Equal(t, "slot-1", wf.SlotID)

	result, err := uc.ConfirmBooking(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, result.Workflow.State)

	require.NotNil(t, result.Notification)
	assert.Equal(t, "New Booking Confirmed", result.Notification.Title)
	assert.Equal(t, entity.NotificationBooking, result.Notification.Kind)
	assert.Contains(t, result.Notification.Description, "Outdoor Survival Masterclass")
	assert.Contains(t, result.Notification.Description, "09:00 AM")
	assert.Equal(t, "Just now", result.Notification.TimeLabel)

	// Exactly one event lands on the store owner's feed.
	feed, err := notifications.ListNotifications(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, result.Notification.ID, feed[0].ID)
}

func TestStartBookingRejectsNonBookingProduct(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)

	_, err := uc.StartBooking(context.Background(), "visitor-1", "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSelectSlotRequiresProduct(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)

	_, err := uc.SelectSlot(context.Background(), "visitor-1", "slot-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestSelectSlotRejectsBookedSlot(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)
	_, err = uc.ConfirmBooking(ctx, "visitor-1")
	require.NoError(t, err)

	_, err = uc.StartBooking(ctx, "visitor-2", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-2", "slot-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestConfirmBookingMarksSlot(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-2")
	require.NoError(t, err)
	_, err = uc.ConfirmBooking(ctx, "visitor-1")
	require.NoError(t, err)

	slot, err := uc.slotRepo.GetByID(ctx, "slot-2")
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)
	assert.Equal(t, "visitor-1", slot.CustomerID)
}

func TestConfirmBookingWithoutSlot(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)

	_, err := uc.ConfirmBooking(context.Background(), "visitor-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestConfirmBookingCancelledContextReverts(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	uc.confirmDelay = time.Second

	ctx := context.Background()
	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err = uc.ConfirmBooking(cancelled, "visitor-1")
	require.Error(t, err)

	wf := uc.GetWorkflow(ctx, "visitor-1")
	assert.Equal(t, StateSlotSelected, wf.State)

	slot, err := uc.slotRepo.GetByID(ctx, "slot-1")
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)
}

func TestConfirmBookingFailureRevertsToSlotSelected(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)

	// The vendor removes the slot while the visitor is checking out.
	require.NoError(t, uc.slotRepo.Delete(ctx, "slot-1"))

	_, err = uc.ConfirmBooking(ctx, "visitor-1")
	require.Error(t, err)

	// The visitor is not wedged in confirming: they can pick again or
	// walk away.
	wf := uc.GetWorkflow(ctx, "visitor-1")
	assert.Equal(t, StateSlotSelected, wf.State)

	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-2")
	require.NoError(t, err)

	wf, err = uc.ResetBooking(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, StateIdle, wf.State)
}

func TestResetBookingReturnsToIdle(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)

	wf, err := uc.ResetBooking(ctx, "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, StateIdle, wf.State)
	assert.Empty(t, wf.ProductID)
	assert.Empty(t, wf.SlotID)
}

func TestStartBookingClearsPreviousSelection(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	_, err = uc.SelectSlot(ctx, "visitor-1", "slot-1")
	require.NoError(t, err)

	wf, err := uc.StartBooking(ctx, "visitor-1", "p3")
	require.NoError(t, err)
	assert.Equal(t, StateProductSelected, wf.State)
	assert.Empty(t, wf.SlotID)
}

func TestGetWorkflowDefaultsToIdle(t *testing.T) {
	uc, _ := newBookingUseCaseForTest(t)

	wf := uc.GetWorkflow(context.Background(), "someone-new")
	assert.Equal(t, StateIdle, wf.State)
}
