package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type CustomerHandler struct {
	customerUseCase *usecase.CustomerUseCase
}

func NewCustomerHandler(customerUseCase *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
	}
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	query := c.QueryParam("q")

	customers, err := h.customerUseCase.ListCustomers(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id := c.Param("id")

	customer, err := h.customerUseCase.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, customer)
}
