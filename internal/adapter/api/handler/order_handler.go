package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/domain/entity"
	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	storeID := c.Get("store_id").(string)
	status := entity.OrderStatus(c.QueryParam("status"))

	orders, err := h.orderUseCase.ListOrders(c.Request().Context(), storeID, status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id := c.Param("id")

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
