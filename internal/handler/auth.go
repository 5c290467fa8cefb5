package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.authService.SignUp(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.authService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	user, err := h.authService.Me(ctx, sess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	resp, err := h.authService.AdminLogin(ctx, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
