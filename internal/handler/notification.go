package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) ListUnread(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	recipient := c.QueryParam("recipient")
	if recipient == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing recipient query parameter")
	}

	notifications, err := h.notificationService.ListUnread(ctx, sess, recipient)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Recipient == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing recipient")
	}

	if err := h.notificationService.MarkAllRead(ctx, sess, req.Recipient); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "read"})
}
