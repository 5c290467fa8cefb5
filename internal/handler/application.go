package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type ApplicationHandler struct {
	applicationService service.ApplicationService
}

func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Submit is the public seller-registration endpoint.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	application, err := h.applicationService.Submit(ctx, req)
	if err != nil {
		return err
	}

	// The password hash stays server-side.
	application.PasswordHash = ""
	return c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListPending(c echo.Context) error {
	ctx := c.Request().Context()

	applications, err := h.applicationService.ListPending(ctx)
	if err != nil {
		return err
	}
	for _, application := range applications {
		application.PasswordHash = ""
	}

	return c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) Approve(c echo.Context) error {
	ctx := c.Request().Context()

	seller, err := h.applicationService.Approve(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seller)
}

func (h *ApplicationHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.applicationService.Reject(ctx, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}
