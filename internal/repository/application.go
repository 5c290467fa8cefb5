package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *model.SellerApplication) error
	FindByID(ctx context.Context, id string) (*model.SellerApplication, error)
	ListPending(ctx context.Context) ([]*model.SellerApplication, error)
	CountPending(ctx context.Context) (int64, error)
	// MarkApproved flips status pending -> approved. Returns
	// gorm.ErrRecordNotFound when the application is absent or was already
	// processed, which makes a double approval a clean failure.
	MarkApproved(ctx context.Context, tx *gorm.DB, id string) error
	Delete(ctx context.Context, id string) error
}

type applicationRepoImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepoImpl{
		db: db,
	}
}

func (r *applicationRepoImpl) Create(ctx context.Context, application *model.SellerApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepoImpl) FindByID(ctx context.Context, id string) (*model.SellerApplication, error) {
	var application model.SellerApplication
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&application).Error
	if err != nil {
		return nil, err
	}

	return &application, nil
}

func (r *applicationRepoImpl) ListPending(ctx context.Context) ([]*model.SellerApplication, error) {
	var applications []*model.SellerApplication
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ApplicationPending).
		Order("submitted_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}

	return applications, nil
}

func (r *applicationRepoImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SellerApplication{}).
		Where("status = ?", model.ApplicationPending).
		Count(&count).Error

	return count, err
}

func (r *applicationRepoImpl) MarkApproved(ctx context.Context, tx *gorm.DB, id string) error {
	result := tx.WithContext(ctx).Model(&model.SellerApplication{}).
		Where("id = ? AND status = ?", id, model.ApplicationPending).
		Update("status", model.ApplicationApproved)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *applicationRepoImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SellerApplication{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
