package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
)

func orderRequest(productID string) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		ProductID: productID,
		BuyerInfo: model.BuyerInfo{
			FirstName: "Awa",
			LastName:  "Sow",
			Email:     "awa@test.com",
			Phone:     "97000001",
			Address:   "Cotonou",
		},
	}
}

func TestOrderLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)
	buyer := buyerSession("user_buyer_1")

	order, err := env.orderSvc.Create(ctx, buyer, orderRequest(product.ID))
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Equal(t, int64(10000), order.Price)
	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, seller.ID, order.SellerID)
	assert.Equal(t, seller.Phone, order.SellerPhone)

	// The seller got a new-order notification.
	sellerSess := sellerSession(seller.ID)
	unread, err := env.notificationSvc.ListUnread(ctx, sellerSess, seller.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, model.NotificationNewOrder, unread[0].Type)
	require.NoError(t, env.notificationSvc.MarkAllRead(ctx, sellerSess, seller.ID))

	// Buyer submits the mobile-money payment proof.
	err = env.orderSvc.SubmitPaymentProof(ctx, buyer, order.ID, "data:image/png;base64,AAAA")
	require.NoError(t, err)

	fetched, err := env.orderSvc.Get(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderAwaitingConfirmation, fetched.Status)
	assert.Equal(t, "data:image/png;base64,AAAA", fetched.PaymentProof)

	unread, err = env.notificationSvc.ListUnread(ctx, sellerSess, seller.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, model.NotificationPaymentProof, unread[0].Type)

	// Seller confirms delivery; the buyer sees it on the next fetch.
	require.NoError(t, env.orderSvc.SetStatus(ctx, sellerSess, order.ID, model.OrderDelivered))

	buyerOrders, err := env.orderSvc.ListForBuyer(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, buyerOrders, 1)
	assert.Equal(t, model.OrderDelivered, buyerOrders[0].Status)
}

func TestOrderUsesPromotionalPrice(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Bijoux faits main", 15000, int64Ptr(12500))

	order, err := env.orderSvc.Create(context.Background(), buyerSession("user_buyer_1"), orderRequest(product.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(12500), order.Price)
}

func TestOrderPriceSnapshotIsImmutable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)
	buyer := buyerSession("user_buyer_1")

	order, err := env.orderSvc.Create(ctx, buyer, orderRequest(product.ID))
	require.NoError(t, err)

	_, err = env.catalogSvc.Update(ctx, sellerSession(seller.ID), seller.ID, product.ID, dto.ProductRequest{
		Name:  product.Name,
		Price: 20000,
	})
	require.NoError(t, err)

	fetched, err := env.orderSvc.Get(ctx, buyer, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), fetched.Price)
}

func TestCreateOrderMissingProduct(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orderSvc.Create(context.Background(), buyerSession("user_buyer_1"), orderRequest("prod_missing"))
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateOrderMissingSeller(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)

	// Simulate the dangling reference the storefront can get into.
	require.NoError(t, env.db.Delete(&model.Seller{ID: seller.ID}).Error)

	_, err := env.orderSvc.Create(ctx, buyerSession("user_buyer_1"), orderRequest(product.ID))
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSetStatusPermissiveTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)
	buyer := buyerSession("user_buyer_1")
	sellerSess := sellerSession(seller.ID)

	order, err := env.orderSvc.Create(ctx, buyer, orderRequest(product.ID))
	require.NoError(t, err)

	// Any known status can follow any other, including regressions.
	for _, status := range []model.OrderStatus{
		model.OrderShipped, model.OrderPending, model.OrderDelivered, model.OrderShipped,
	} {
		require.NoError(t, env.orderSvc.SetStatus(ctx, sellerSess, order.ID, status))
	}

	err = env.orderSvc.SetStatus(ctx, sellerSess, order.ID, "cancelled")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = env.orderSvc.SetStatus(ctx, sellerSess, "order_missing", model.OrderShipped)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestSetStatusOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)

	order, err := env.orderSvc.Create(ctx, buyerSession("user_buyer_1"), orderRequest(product.ID))
	require.NoError(t, err)

	err = env.orderSvc.SetStatus(ctx, sellerSession("seller_other"), order.ID, model.OrderShipped)
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))
}

func TestSubmitPaymentProofOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)

	order, err := env.orderSvc.Create(ctx, buyerSession("user_buyer_1"), orderRequest(product.ID))
	require.NoError(t, err)

	err = env.orderSvc.SubmitPaymentProof(ctx, buyerSession("user_buyer_2"), order.ID, "data:image/png;base64,AAAA")
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	err = env.orderSvc.SubmitPaymentProof(ctx, buyerSession("user_buyer_1"), order.ID, "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestOrderListsSortedNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Poterie artisanale", 10000, nil)
	buyer := buyerSession("user_buyer_1")

	first, err := env.orderSvc.Create(ctx, buyer, orderRequest(product.ID))
	require.NoError(t, err)
	second, err := env.orderSvc.Create(ctx, buyer, orderRequest(product.ID))
	require.NoError(t, err)

	require.NoError(t, env.db.Model(first).Update("order_date", first.OrderDate.Add(-time.Second)).Error)

	orders, err := env.orderSvc.ListForSeller(ctx, sellerSession(seller.ID), seller.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
