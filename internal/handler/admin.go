package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type AdminHandler struct {
	profileService service.AdminProfileService
	statsService   service.StatsService
}

func NewAdminHandler(profileService service.AdminProfileService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		profileService: profileService,
		statsService:   statsService,
	}
}

func (h *AdminHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.profileService.Get(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) SaveProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SaveAdminProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	profile, err := h.profileService.Save(ctx, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.statsService.AdminStats(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) TopSellers(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	sellers, err := h.statsService.TopSellers(ctx, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sellers)
}

func (h *AdminHandler) SellerStats(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	stats, err := h.statsService.SellerStats(ctx, sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
