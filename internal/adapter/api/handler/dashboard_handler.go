package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	uid := c.Get("uid").(string)

	data, err := h.dashboardUseCase.GetDashboard(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, data)
}
