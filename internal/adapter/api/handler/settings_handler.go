package handler

import (
	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	uid := c.Get("uid").(string)

	data, err := h.settingsUseCase.GetSettings(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, data)
}
