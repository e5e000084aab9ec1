package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListStores(c echo.Context) error {
	stores, err := h.adminUseCase.ListStores(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stores)
}

func (h *AdminHandler) ListDisputes(c echo.Context) error {
	disputes, err := h.adminUseCase.ListDisputes(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, disputes)
}

func (h *AdminHandler) GetPlatformStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetPlatformStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}
