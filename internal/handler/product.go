package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

func (h *ProductHandler) ListAll(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListAll(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.Get(ctx, c.Param("productId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetSeller(c echo.Context) error {
	ctx := c.Request().Context()

	seller, err := h.catalogService.GetSeller(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seller)
}

func (h *ProductHandler) ListBySeller(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.ListBySeller(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.catalogService.Add(ctx, sess, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	product, err := h.catalogService.Update(ctx, sess, c.Param("id"), c.Param("productId"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	if err := h.catalogService.Delete(ctx, sess, c.Param("id"), c.Param("productId")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *ProductHandler) UpdateSellerProfile(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.UpdateSellerProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	seller, err := h.catalogService.UpdateSellerProfile(ctx, sess, c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seller)
}

func (h *ProductHandler) SuggestDescription(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SuggestDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	suggestion, err := h.catalogService.SuggestDescription(ctx, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.SuggestDescriptionResponse{Suggestion: suggestion})
}
