package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type SellerRepository interface {
	Create(ctx context.Context, tx *gorm.DB, seller *model.Seller) error
	FindByID(ctx context.Context, id string) (*model.Seller, error)
	// List returns sellers in creation order; derived views rely on this
	// for deterministic tie-breaking.
	List(ctx context.Context) ([]*model.Seller, error)
	Count(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, seller *model.Seller) error
}

type sellerRepoImpl struct {
	db *gorm.DB
}

func NewSellerRepository(db *gorm.DB) SellerRepository {
	return &sellerRepoImpl{
		db: db,
	}
}

func (r *sellerRepoImpl) Create(ctx context.Context, tx *gorm.DB, seller *model.Seller) error {
	return tx.WithContext(ctx).Create(seller).Error
}

func (r *sellerRepoImpl) FindByID(ctx context.Context, id string) (*model.Seller, error) {
	var seller model.Seller
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&seller).Error
	if err != nil {
		return nil, err
	}

	return &seller, nil
}

func (r *sellerRepoImpl) List(ctx context.Context) ([]*model.Seller, error) {
	var sellers []*model.Seller
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&sellers).Error
	if err != nil {
		return nil, err
	}

	return sellers, nil
}

func (r *sellerRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Seller{}).Count(&count).Error

	return count, err
}

func (r *sellerRepoImpl) UpdateProfile(ctx context.Context, seller *model.Seller) error {
	result := r.db.WithContext(ctx).Model(&model.Seller{}).
		Where("id = ?", seller.ID).
		Updates(map[string]interface{}{
			"company_name":    seller.CompanyName,
			"phone":           seller.Phone,
			"whatsapp":        seller.Whatsapp,
			"address":         seller.Address,
			"profile_picture": seller.ProfilePicture,
			"banner_picture":  seller.BannerPicture,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
