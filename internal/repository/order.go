package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (*model.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*model.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	// AttachPaymentProof stores the proof and moves the order to
	// awaiting_confirmation in one write.
	AttachPaymentProof(ctx context.Context, orderID, proof string) error
	Count(ctx context.Context) (int64, error)
	CountsBySeller(ctx context.Context) (map[string]int64, error)
	CountBySeller(ctx context.Context, sellerID string) (int64, error)
	DeliveredAmountBySeller(ctx context.Context, sellerID string) (int64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) ListBySeller(ctx context.Context, sellerID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListByBuyer(ctx context.Context, buyerID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     status,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) AttachPaymentProof(ctx context.Context, orderID, proof string) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":        model.OrderAwaitingConfirmation,
			"payment_proof": proof,
			"version":       gorm.Expr("version + 1"),
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *orderRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error

	return count, err
}

func (r *orderRepoImpl) CountsBySeller(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		SellerID string
		N        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
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

func (r *orderRepoImpl) CountBySeller(ctx context.Context, sellerID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error

	return count, err
}

func (r *orderRepoImpl) DeliveredAmountBySeller(ctx context.Context, sellerID string) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("SUM(price * quantity)").
		Where("seller_id = ? AND status = ?", sellerID, model.OrderDelivered).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}

	return *total, nil
}
