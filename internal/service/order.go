package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

type OrderService interface {
	Create(ctx context.Context, sess *auth.Session, req dto.CreateOrderRequest) (*model.Order, error)
	Get(ctx context.Context, sess *auth.Session, orderID string) (*model.Order, error)
	ListForSeller(ctx context.Context, sess *auth.Session, sellerID string) ([]*model.Order, error)
	ListForBuyer(ctx context.Context, sess *auth.Session) ([]*model.Order, error)
	// SetStatus moves the order to any known status. Transitions are
	// deliberately unconstrained for the seller, matching how sellers use
	// the dashboard to correct mis-clicks.
	SetStatus(ctx context.Context, sess *auth.Session, orderID string, status model.OrderStatus) error
	SubmitPaymentProof(ctx context.Context, sess *auth.Session, orderID, proof string) error
}

type orderServiceImpl struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	sellerRepo    repository.SellerRepository
	notifications NotificationService
	logger        *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	notifications NotificationService,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		sellerRepo:    sellerRepo,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, sess *auth.Session, req dto.CreateOrderRequest) (*model.Order, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product %s not found", req.ProductID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load product")
	}

	seller, err := s.sellerRepo.FindByID(ctx, product.SellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("product references missing seller",
			zap.String("product_id", product.ID),
			zap.String("seller_id", product.SellerID))
		return nil, apperr.NotFound("seller for product %s not found", product.ID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load seller")
	}

	// The order freezes everything a buyer saw at checkout: name, image,
	// effective price and the seller's phone for the mobile-money payment.
	order := &model.Order{
		ID:           "order_" + uuid.NewString(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		Price:        product.EffectivePrice(),
		Quantity:     1,
		SellerID:     seller.ID,
		SellerPhone:  seller.Phone,
		BuyerID:      sess.UserID,
		BuyerInfo:    req.BuyerInfo,
		Status:       model.OrderPending,
		OrderDate:    time.Now(),
		Version:      1,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperr.Storage(err, "create order")
	}

	err = s.notifications.Raise(ctx, model.RecipientSeller, seller.ID,
		model.NotificationNewOrder,
		fmt.Sprintf("Nouvelle commande pour : %s.", product.Name),
		"/seller/dashboard")
	if err != nil {
		s.logger.Warn("raise seller notification failed",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	return order, nil
}

func (s *orderServiceImpl) Get(ctx context.Context, sess *auth.Session, orderID string) (*model.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if sess.UserID != order.BuyerID && sess.UserID != order.SellerID && !sess.IsAdmin() {
		return nil, apperr.Auth("order belongs to another user")
	}

	return order, nil
}

func (s *orderServiceImpl) ListForSeller(ctx context.Context, sess *auth.Session, sellerID string) ([]*model.Order, error) {
	if !sess.Owns(sellerID) {
		return nil, apperr.Auth("orders belong to another seller")
	}

	orders, err := s.orderRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Storage(err, "list seller orders")
	}

	return orders, nil
}

func (s *orderServiceImpl) ListForBuyer(ctx context.Context, sess *auth.Session) ([]*model.Order, error) {
	orders, err := s.orderRepo.ListByBuyer(ctx, sess.UserID)
	if err != nil {
		return nil, apperr.Storage(err, "list buyer orders")
	}

	return orders, nil
}

func (s *orderServiceImpl) SetStatus(ctx context.Context, sess *auth.Session, orderID string, status model.OrderStatus) error {
	if !model.KnownOrderStatus(status) {
		return apperr.Validation("unknown order status %q", status)
	}

	order, err := s.load(ctx, orderID)
	if err != nil {
		return err
	}
	if !sess.Owns(order.SellerID) {
		return apperr.Auth("order belongs to another seller")
	}

	err = s.orderRepo.UpdateStatus(ctx, orderID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order %s not found", orderID)
	}
	if err != nil {
		return apperr.Storage(err, "update order status")
	}

	return nil
}

func (s *orderServiceImpl) SubmitPaymentProof(ctx context.Context, sess *auth.Session, orderID, proof string) error {
	if proof == "" {
		return apperr.Validation("payment proof is required")
	}

	order, err := s.load(ctx, orderID)
	if err != nil {
		return err
	}
	if sess.UserID != order.BuyerID && !sess.IsAdmin() {
		return apperr.Auth("order belongs to another buyer")
	}

	err = s.orderRepo.AttachPaymentProof(ctx, orderID, proof)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("order %s not found", orderID)
	}
	if err != nil {
		return apperr.Storage(err, "attach payment proof")
	}

	err = s.notifications.Raise(ctx, model.RecipientSeller, order.SellerID,
		model.NotificationPaymentProof,
		fmt.Sprintf("Preuve de paiement reçue pour la commande #%s...", shortID(orderID)),
		"/seller/dashboard")
	if err != nil {
		s.logger.Warn("raise payment proof notification failed",
			zap.String("order_id", orderID), zap.Error(err))
	}

	return nil
}

func (s *orderServiceImpl) load(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("order %s not found", orderID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load order")
	}

	return order, nil
}

// shortID is the human-facing order reference, the last six characters
// of the id.
func shortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
