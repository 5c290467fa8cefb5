package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/REBCDR07/marketconnect/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListUnread(ctx context.Context, kind model.RecipientKind, recipientID string) ([]*model.Notification, error)
	MarkAllRead(ctx context.Context, kind model.RecipientKind, recipientID string) error
}

type notificationRepoImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepoImpl{
		db: db,
	}
}

func (r *notificationRepoImpl) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepoImpl) ListUnread(ctx context.Context, kind model.RecipientKind, recipientID string) ([]*model.Notification, error) {
	var notifications []*model.Notification
	query := r.db.WithContext(ctx).
		Where("recipient_kind = ? AND is_read = ?", kind, false)
	if kind == model.RecipientSeller {
		query = query.Where("recipient_id = ?", recipientID)
	}

	err := query.Order("created_at DESC").Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkAllRead is a bulk flip; notifications are never deleted.
func (r *notificationRepoImpl) MarkAllRead(ctx context.Context, kind model.RecipientKind, recipientID string) error {
	query := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("recipient_kind = ? AND is_read = ?", kind, false)
	if kind == model.RecipientSeller {
		query = query.Where("recipient_id = ?", recipientID)
	}

	return query.Update("is_read", true).Error
}
