package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/middleware"
	"github.com/REBCDR07/marketconnect/internal/service"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	order, err := h.orderService.Create(ctx, sess, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	order, err := h.orderService.Get(ctx, sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListForBuyer(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	orders, err := h.orderService.ListForBuyer(ctx, sess)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListForSeller(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	orders, err := h.orderService.ListForSeller(ctx, sess, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) SetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.SetOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.orderService.SetStatus(ctx, sess, c.Param("id"), req.Status); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": string(req.Status)})
}

func (h *OrderHandler) SubmitPaymentProof(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.SessionFrom(c)

	var req dto.PaymentProofRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.orderService.SubmitPaymentProof(ctx, sess, c.Param("id"), req.Proof); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "awaiting_confirmation"})
}
