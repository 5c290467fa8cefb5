package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*model.Product, error)
	ListAll(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, sellerID, productID string) error
	CountsBySeller(ctx context.Context) (map[string]int64, error)
	CountBySeller(ctx context.Context, sellerID string) (int64, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) ListBySeller(ctx context.Context, sellerID string) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) ListAll(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Update rewrites the mutable fields and bumps the version column. The
// seller id is part of the predicate so a product can only be rewritten
// through its owner.
func (r *productRepoImpl) Update(ctx context.Context, product *model.Product) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND seller_id = ?", product.ID, product.SellerID).
		Updates(map[string]interface{}{
			"name":              product.Name,
			"description":       product.Description,
			"price":             product.Price,
			"promotional_price": product.PromotionalPrice,
			"image":             product.Image,
			"image_hint":        product.ImageHint,
			"version":           gorm.Expr("version + 1"),
			"updated_at":        time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *productRepoImpl) Delete(ctx context.Context, sellerID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", productID, sellerID).
		Delete(&model.Product{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *productRepoImpl) CountsBySeller(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		SellerID string
		N        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Select("seller_id, COUNT(*) AS n").
		Group("seller_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.SellerID] = row.N
	}

	return counts, nil
}

func (r *productRepoImpl) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error

	return count, err
}
