package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendio/internal/adapter/repository"
	"vendio/internal/infrastructure/ratelimit"
	"vendio/internal/usecase"
)

func newBookingHandlerForTest() *BookingHandler {
	productRepo := repository.NewMemoryProductRepository(repository.SeedProducts())
	slotRepo := repository.NewMemoryBookingSlotRepository(repository.SeedBookingSlots())
	storeRepo := repository.NewMemoryStoreRepository(repository.SeedStores())
	notificationUseCase := usecase.NewNotificationUseCase(repository.NewMemoryNotificationRepository(nil), nil)
	bookingUseCase := usecase.NewBookingUseCase(productRepo, slotRepo, storeRepo, notificationUseCase, ratelimit.NewRateLimiter(), time.Millisecond)
	return NewBookingHandler(bookingUseCase)
}

func bookingRequest(e *echo.Echo, method, target, body, visitor string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if visitor != "" {
		req.Header.Set("X-Visitor-ID", visitor)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBookingFlowOverHTTP(t *testing.T) {
	e := newTestEcho()
	h := newBookingHandlerForTest()

	c, rec := bookingRequest(e, http.MethodPost, "/v1/bookings/start", `{"product_id":"p3"}`, "visitor-1")
	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "product_selected")

	c, rec = bookingRequest(e, http.MethodPost, "/v1/bookings/slot", `{"slot_id":"slot-1"}`, "visitor-1")
	require.NoError(t, h.SelectSlot(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot_selected")

	c, rec = bookingRequest(e, http.MethodPost, "/v1/bookings/confirm", "", "visitor-1")
	require.NoError(t, h.Confirm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "succeeded")
	assert.Contains(t, rec.Body.String(), "New Booking Confirmed")
}

func TestBookingRequiresVisitorHeader(t *testing.T) {
	e := newTestEcho()
	h := newBookingHandlerForTest()

	c, rec := bookingRequest(e, http.MethodPost, "/v1/bookings/start", `{"product_id":"p3"}`, "")
	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookingStatusDefaultsToIdle(t *testing.T) {
	e := newTestEcho()
	h := newBookingHandlerForTest()

	c, rec := bookingRequest(e, http.MethodGet, "/v1/bookings/status", "", "someone-new")
	require.NoError(t, h.Status(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "idle")
}
