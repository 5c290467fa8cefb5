package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/client"
	"github.com/REBCDR07/marketconnect/internal/dto"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

type CatalogService interface {
	Add(ctx context.Context, sess *auth.Session, sellerID string, req dto.ProductRequest) (*model.Product, error)
	Update(ctx context.Context, sess *auth.Session, sellerID, productID string, req dto.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, sess *auth.Session, sellerID, productID string) error
	Get(ctx context.Context, productID string) (*model.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*model.Product, error)
	ListAll(ctx context.Context) ([]*model.Product, error)
	GetSeller(ctx context.Context, sellerID string) (*model.Seller, error)
	// UpdateSellerProfile merges the provided fields over the storefront;
	// absent fields keep their value.
	UpdateSellerProfile(ctx context.Context, sess *auth.Session, sellerID string, req dto.UpdateSellerProfileRequest) (*model.Seller, error)
	SuggestDescription(ctx context.Context, description string) (string, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
	suggest     client.SuggestClient
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	sellerRepo repository.SellerRepository,
	suggest client.SuggestClient,
) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		suggest:     suggest,
	}
}

func validateProduct(req dto.ProductRequest) error {
	if req.Name == "" {
		return apperr.Validation("product name is required")
	}
	if req.Price <= 0 {
		return apperr.Validation("product price must be positive")
	}
	return nil
}

func (s *catalogServiceImpl) Add(ctx context.Context, sess *auth.Session, sellerID string, req dto.ProductRequest) (*model.Product, error) {
	if !sess.Owns(sellerID) {
		return nil, apperr.Auth("only the owning seller may add products")
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("seller %s not found", sellerID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load seller")
	}

	product := &model.Product{
		ID:               "prod_" + uuid.NewString(),
		SellerID:         seller.ID,
		SellerName:       seller.CompanyName,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		Image:            req.Image,
		ImageHint:        req.ImageHint,
		Version:          1,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperr.Storage(err, "create product")
	}

	return product, nil
}

func (s *catalogServiceImpl) Update(ctx context.Context, sess *auth.Session, sellerID, productID string, req dto.ProductRequest) (*model.Product, error) {
	if !sess.Owns(sellerID) {
		return nil, apperr.Auth("only the owning seller may edit products")
	}
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:               productID,
		SellerID:         sellerID,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		PromotionalPrice: req.PromotionalPrice,
		Image:            req.Image,
		ImageHint:        req.ImageHint,
	}
	err := s.productRepo.Update(ctx, product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product %s not found for seller %s", productID, sellerID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "update product")
	}

	updated, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.Storage(err, "reload product")
	}

	return updated, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, sess *auth.Session, sellerID, productID string) error {
	if !sess.Owns(sellerID) {
		return apperr.Auth("only the owning seller may delete products")
	}

	err := s.productRepo.Delete(ctx, sellerID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("product %s not found for seller %s", productID, sellerID)
	}
	if err != nil {
		return apperr.Storage(err, "delete product")
	}

	return nil
}

func (s *catalogServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("product %s not found", productID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load product")
	}

	return product, nil
}

func (s *catalogServiceImpl) ListBySeller(ctx context.Context, sellerID string) ([]*model.Product, error) {
	products, err := s.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, apperr.Storage(err, "list products")
	}

	return products, nil
}

func (s *catalogServiceImpl) ListAll(ctx context.Context) ([]*model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "list products")
	}

	return products, nil
}

func (s *catalogServiceImpl) GetSeller(ctx context.Context, sellerID string) (*model.Seller, error) {
	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("seller %s not found", sellerID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "load seller")
	}

	return seller, nil
}

func (s *catalogServiceImpl) UpdateSellerProfile(ctx context.Context, sess *auth.Session, sellerID string, req dto.UpdateSellerProfileRequest) (*model.Seller, error) {
	if !sess.Owns(sellerID) {
		return nil, apperr.Auth("only the owning seller may edit the storefront")
	}

	seller, err := s.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		if *req.CompanyName == "" {
			return nil, apperr.Validation("company name cannot be empty")
		}
		seller.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		seller.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		seller.Whatsapp = *req.Whatsapp
	}
	if req.Address != nil {
		seller.Address = *req.Address
	}
	if req.ProfilePicture != nil {
		seller.ProfilePicture = *req.ProfilePicture
	}
	if req.BannerPicture != nil {
		seller.BannerPicture = *req.BannerPicture
	}

	// A rename is not propagated to existing products; their seller name
	// is a creation-time snapshot.
	err = s.sellerRepo.UpdateProfile(ctx, seller)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("seller %s not found", sellerID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "update seller profile")
	}

	return seller, nil
}

func (s *catalogServiceImpl) SuggestDescription(ctx context.Context, description string) (string, error) {
	if description == "" {
		return "", apperr.Validation("description is required")
	}

	suggestion, err := s.suggest.Improve(ctx, description)
	if err != nil {
		return "", fmt.Errorf("suggest description: %w", err)
	}

	return suggestion, nil
}
