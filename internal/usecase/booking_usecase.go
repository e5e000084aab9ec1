package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vendio/internal/domain/entity"
	"vendio/internal/domain/repository"
	"vendio/internal/infrastructure/ratelimit"
	"vendio/pkg/errors"
	"vendio/pkg/logger"
)

// WorkflowState is the phase of a visitor's booking checkout:
// idle -> product_selected -> slot_selected -> confirming -> succeeded.
type WorkflowState string

const (
	StateIdle            WorkflowState = "idle"
	StateProductSelected WorkflowState = "product_selected"
	StateSlotSelected    WorkflowState = "slot_selected"
	StateConfirming      WorkflowState = "confirming"
	StateSucceeded       WorkflowState = "succeeded"
)

// BookingWorkflow is one visitor's linear booking session. A visitor has
// at most one workflow at a time.
type BookingWorkflow struct {
	VisitorID string        `json:"visitor_id"`
	State     WorkflowState `json:"state"`
	ProductID string        `json:"product_id,omitempty"`
	SlotID    string        `json:"slot_id,omitempty"`
}

type BookingUseCase struct {
	productRepo  repository.ProductRepository
	slotRepo     repository.BookingSlotRepository
	storeRepo    repository.StoreRepository
	notification *NotificationUseCase
	limiter      *ratelimit.RateLimiter
	// Stand-in for the external payment/booking round-trip.
	confirmDelay time.Duration

	mu        sync.Mutex
	workflows map[string]*BookingWorkflow
}

func NewBookingUseCase(
	productRepo repository.ProductRepository,
	slotRepo repository.BookingSlotRepository,
	storeRepo repository.StoreRepository,
	notification *NotificationUseCase,
	limiter *ratelimit.RateLimiter,
	confirmDelay time.Duration,
) *BookingUseCase {
	return &BookingUseCase{
		productRepo:  productRepo,
		slotRepo:     slotRepo,
		storeRepo:    storeRepo,
		notification: notification,
		limiter:      limiter,
		confirmDelay: confirmDelay,
		workflows:    make(map[string]*BookingWorkflow),
	}
}

// StartBooking opens a booking product's detail view: the workflow moves
// to product_selected and any previous slot choice is cleared.
func (uc *BookingUseCase) StartBooking(ctx context.Context, visitorID, productID string) (*BookingWorkflow, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Type != entity.ProductTypeBooking {
		return nil, errors.BadRequest("Product is not bookable", nil)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	wf := uc.workflow(visitorID)
	if wf.State == StateConfirming {
		return nil, errors.Conflict("A booking is already being confirmed")
	}
	wf.State = StateProductSelected
	wf.ProductID = product.ID
	wf.SlotID = ""
	return uc.snapshot(wf), nil
}

// SelectSlot picks an available slot of the selected product. Booked
// slots are not selectable.
func (uc *BookingUseCase) SelectSlot(ctx context.Context, visitorID, slotID string) (*BookingWorkflow, error) {
	uc.mu.Lock()
	wf := uc.workflow(visitorID)
	if wf.State != StateProductSelected && wf.State != StateSlotSelected {
		uc.mu.Unlock()
		return nil, errors.Conflict("Select a product before choosing a slot")
	}
	productID := wf.ProductID
	uc.mu.Unlock()

	slot, err := uc.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot.ProductID != productID {
		return nil, errors.BadRequest("Slot does not belong to the selected product", nil)
	}
	if slot.IsBooked {
		return nil, errors.Conflict("Slot is no longer available")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	wf = uc.workflow(visitorID)
	if wf.State != StateProductSelected && wf.State != StateSlotSelected {
		return nil, errors.Conflict("Select a product before choosing a slot")
	}
	wf.State = StateSlotSelected
	wf.SlotID = slot.ID
	return uc.snapshot(wf), nil
}

type ConfirmResult struct {
	Workflow     *BookingWorkflow     `json:"workflow"`
	Notification *entity.Notification `json:"notification"`
}

// ConfirmBooking runs the confirmation step: a fixed simulated delay in
// place of the external payment round-trip, then the success state and
// exactly one booking notification for the vendor. The simulated
// round-trip itself never fails; lookup or cancellation errors put the
// workflow back on slot_selected. Double-booking is rejected at slot
// selection, not here.
func (uc *BookingUseCase) ConfirmBooking(ctx context.Context, visitorID string) (*ConfirmResult, error) {
	if allowed, wait := uc.limiter.Allow(visitorID, "confirm_booking"); !allowed {
		return nil, errors.TooManyRequests(fmt.Sprintf("Too many booking attempts, retry in %s", wait.Round(time.Second)))
	}

	uc.mu.Lock()
	wf := uc.workflow(visitorID)
	if wf.State != StateSlotSelected {
		uc.mu.Unlock()
		return nil, errors.Conflict("No slot selected to confirm")
	}
	wf.State = StateConfirming
	slotID := wf.SlotID
	productID := wf.ProductID
	uc.mu.Unlock()

	// Any failure past this point must leave the workflow back in
	// slot_selected; a workflow stuck in confirming can never be reset
	// or restarted.
	revert := func(err error) (*ConfirmResult, error) {
		uc.mu.Lock()
		wf.State = StateSlotSelected
		uc.mu.Unlock()
		return nil, err
	}

	select {
	case <-time.After(uc.confirmDelay):
	case <-ctx.Done():
		return revert(ctx.Err())
	}

	slot, err := uc.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return revert(err)
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return revert(err)
	}
	store, err := uc.storeRepo.GetByID(ctx, product.StoreID)
	if err != nil {
		return revert(err)
	}

	slot.IsBooked = true
	slot.CustomerID = visitorID
	if err := uc.slotRepo.Update(ctx, slot); err != nil {
		return revert(err)
	}

	notification, err := uc.notification.AddNotification(ctx, store.VendorID, AddNotificationInput{
		Title:       "New Booking Confirmed",
		Description: fmt.Sprintf("A new session for %q at %s has been booked.", product.Name, formatSlotTime(slot.StartTime)),
		TimeLabel:   "Just now",
		Kind:        entity.NotificationBooking,
	})
	if err != nil {
		return revert(err)
	}

	uc.mu.Lock()
	wf.State = StateSucceeded
	snapshot := uc.snapshot(wf)
	uc.mu.Unlock()

	logger.Info("Booking confirmed: visitor=%s product=%s slot=%s", visitorID, productID, slotID)
	return &ConfirmResult{Workflow: snapshot, Notification: notification}, nil
}

// ResetBooking is the "return to store" action: selection and success
// flag are cleared and the workflow is idle again.
func (uc *BookingUseCase) ResetBooking(ctx context.Context, visitorID string) (*BookingWorkflow, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	wf := uc.workflow(visitorID)
	if wf.State == StateConfirming {
		return nil, errors.Conflict("A booking is being confirmed")
	}
	wf.State = StateIdle
	wf.ProductID = ""
	wf.SlotID = ""
	return uc.snapshot(wf), nil
}

func (uc *BookingUseCase) GetWorkflow(ctx context.Context, visitorID string) *BookingWorkflow {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot(uc.workflow(visitorID))
}

// workflow returns the visitor's workflow, creating an idle one on first
// use. Callers must hold uc.mu.
func (uc *BookingUseCase) workflow(visitorID string) *BookingWorkflow {
	wf, ok := uc.workflows[visitorID]
	if !ok {
		wf = &BookingWorkflow{VisitorID: visitorID, State: StateIdle}
		uc.workflows[visitorID] = wf
	}
	return wf
}

func (uc *BookingUseCase) snapshot(wf *BookingWorkflow) *BookingWorkflow {
	clone := *wf
	return &clone
}

// formatSlotTime renders a slot's ISO start time the way the vendor sees
// it, e.g. "2025-06-12T09:00:00" -> "09:00 AM". An unparseable value
// renders empty rather than failing the booking.
func formatSlotTime(startTime string) string {
	// Seeded slots carry seconds, vendor-entered ones usually do not.
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, startTime); err == nil {
			return t.Format("03:04 PM")
		}
	}
	return ""
}
