package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/errors"
	"vendio/pkg/response"
)

const visitorHeader = "X-Visitor-ID"

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

func visitorID(c echo.Context) (string, error) {
	id := c.Request().Header.Get(visitorHeader)
	if id == "" {
		return "", errors.BadRequest("Missing "+visitorHeader+" header", nil)
	}
	return id, nil
}

type startBookingRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *BookingHandler) Start(c echo.Context) error {
	visitor, err := visitorID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req startBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wf, err := h.bookingUseCase.StartBooking(c.Request().Context(), visitor, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wf)
}

type selectSlotRequest struct {
	SlotID string `json:"slot_id" validate:"required"`
}

func (h *BookingHandler) SelectSlot(c echo.Context) error {
	visitor, err := visitorID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req selectSlotRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	wf, err := h.bookingUseCase.SelectSlot(c.Request().Context(), visitor, req.SlotID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wf)
}

func (h *BookingHandler) Confirm(c echo.Context) error {
	visitor, err := visitorID(c)
	if err != nil {
		return response.Error(c, err)
	}

	result, err := h.bookingUseCase.ConfirmBooking(c.Request().Context(), visitor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *BookingHandler) Reset(c echo.Context) error {
	visitor, err := visitorID(c)
	if err != nil {
		return response.Error(c, err)
	}

	wf, err := h.bookingUseCase.ResetBooking(c.Request().Context(), visitor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, wf)
}

func (h *BookingHandler) Status(c echo.Context) error {
	visitor, err := visitorID(c)
	if err != nil {
		return response.Error(c, err)
	}

	wf := h.bookingUseCase.GetWorkflow(c.Request().Context(), visitor)

	return response.Success(c, wf)
}
