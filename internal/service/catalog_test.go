package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/dto"
)

func TestAddProductRequiresSeller(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalogSvc.Add(context.Background(), sellerSession("seller_ghost"), "seller_ghost", dto.ProductRequest{
		Name:  "Panier tressé",
		Price: 8000,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAddProductOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")

	_, err := env.catalogSvc.Add(context.Background(), sellerSession("seller_other"), seller.ID, dto.ProductRequest{
		Name:  "Panier tressé",
		Price: 8000,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	// The admin may act on any storefront.
	_, err = env.catalogSvc.Add(context.Background(), adminSession(), seller.ID, dto.ProductRequest{
		Name:  "Panier tressé",
		Price: 8000,
	})
	assert.NoError(t, err)
}

func TestAddProductValidation(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	sess := sellerSession(seller.ID)

	_, err := env.catalogSvc.Add(context.Background(), sess, seller.ID, dto.ProductRequest{Price: 8000})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = env.catalogSvc.Add(context.Background(), sess, seller.ID, dto.ProductRequest{Name: "Panier", Price: 0})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestProductSnapshotsSellerName(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")

	product := addProduct(t, env, seller.ID, "Panier tressé", 8000, nil)
	assert.Equal(t, "Atelier X", product.SellerName)
	assert.Equal(t, seller.ID, product.SellerID)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Panier tressé", 8000, nil)
	sess := sellerSession(seller.ID)

	updated, err := env.catalogSvc.Update(context.Background(), sess, seller.ID, product.ID, dto.ProductRequest{
		Name:             "Panier tressé royal",
		Price:            9000,
		PromotionalPrice: int64Ptr(7000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Panier tressé royal", updated.Name)
	assert.Equal(t, int64(9000), updated.Price)
	require.NotNil(t, updated.PromotionalPrice)
	assert.Equal(t, int64(7000), *updated.PromotionalPrice)
	assert.Equal(t, product.Version+1, updated.Version)
}

func TestUpdateMissingProductReportsNotFound(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")

	_, err := env.catalogSvc.Update(context.Background(), sellerSession(seller.ID), seller.ID, "prod_missing", dto.ProductRequest{
		Name:  "Panier",
		Price: 8000,
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Panier tressé", 8000, nil)
	sess := sellerSession(seller.ID)
	ctx := context.Background()

	require.NoError(t, env.catalogSvc.Delete(ctx, sess, seller.ID, product.ID))

	products, err := env.catalogSvc.ListBySeller(ctx, seller.ID)
	require.NoError(t, err)
	assert.Empty(t, products)

	// Deleting again reports not found; the list is unchanged.
	err = env.catalogSvc.Delete(ctx, sess, seller.ID, product.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListAll(t *testing.T) {
	env := newTestEnv(t)
	first := approveSeller(t, env, "Atelier X", "atelier@test.com")
	second := approveSeller(t, env, "Tissage Royal", "tissage@test.com")
	addProduct(t, env, first.ID, "Panier tressé", 8000, nil)
	addProduct(t, env, second.ID, "Tissus colorés", 9500, nil)

	products, err := env.catalogSvc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestUpdateSellerProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller := approveSeller(t, env, "Atelier X", "atelier@test.com")
	product := addProduct(t, env, seller.ID, "Panier tressé", 8000, nil)
	sess := sellerSession(seller.ID)

	updated, err := env.catalogSvc.UpdateSellerProfile(ctx, sess, seller.ID, dto.UpdateSellerProfileRequest{
		CompanyName: strPtr("Atelier X Royal"),
		Phone:       strPtr("96111111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Atelier X Royal", updated.CompanyName)
	assert.Equal(t, "96111111", updated.Phone)
	// Untouched fields survive the partial update.
	assert.Equal(t, seller.Email, updated.Email)

	// Existing products keep their creation-time seller name.
	fetched, err := env.catalogSvc.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atelier X", fetched.SellerName)

	_, err = env.catalogSvc.UpdateSellerProfile(ctx, sellerSession("seller_other"), seller.ID, dto.UpdateSellerProfileRequest{})
	assert.True(t, apperr.IsKind(err, apperr.KindAuth))

	_, err = env.catalogSvc.UpdateSellerProfile(ctx, sess, seller.ID, dto.UpdateSellerProfileRequest{
		CompanyName: strPtr(""),
	})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSuggestDescriptionPassThrough(t *testing.T) {
	env := newTestEnv(t)

	// No suggestion service configured: the text comes back unchanged.
	suggestion, err := env.catalogSvc.SuggestDescription(context.Background(), "Panier tressé à la main")
	require.NoError(t, err)
	assert.Equal(t, "Panier tressé à la main", suggestion)

	_, err = env.catalogSvc.SuggestDescription(context.Background(), "")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
