package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"vendio/internal/usecase"
	"vendio/pkg/response"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	notifications, err := h.notificationUseCase.ListNotifications(c.Request().Context(), uid, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notifications)
}
