package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/REBCDR07/marketconnect/internal/apperr"
	"github.com/REBCDR07/marketconnect/internal/auth"
	"github.com/REBCDR07/marketconnect/internal/model"
	"github.com/REBCDR07/marketconnect/internal/repository"
)

type NotificationService interface {
	Raise(ctx context.Context, kind model.RecipientKind, recipientID string, typ model.NotificationType, message, link string) error
	// ListUnread and MarkAllRead address a recipient key: the literal
	// "admin" sentinel or a seller id.
	ListUnread(ctx context.Context, sess *auth.Session, recipientKey string) ([]*model.Notification, error)
	MarkAllRead(ctx context.Context, sess *auth.Session, recipientKey string) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
	}
}

func (s *notificationServiceImpl) Raise(ctx context.Context, kind model.RecipientKind, recipientID string, typ model.NotificationType, message, link string) error {
	notification := &model.Notification{
		ID:            "notif_" + uuid.NewString(),
		RecipientKind: kind,
		RecipientID:   recipientID,
		Type:          typ,
		Message:       message,
		Link:          link,
		IsRead:        false,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return apperr.Storage(err, "create notification")
	}

	return nil
}

func (s *notificationServiceImpl) ListUnread(ctx context.Context, sess *auth.Session, recipientKey string) ([]*model.Notification, error) {
	kind, recipientID, err := resolveRecipient(sess, recipientKey)
	if err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.ListUnread(ctx, kind, recipientID)
	if err != nil {
		return nil, apperr.Storage(err, "list notifications")
	}

	return notifications, nil
}

func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, sess *auth.Session, recipientKey string) error {
	kind, recipientID, err := resolveRecipient(sess, recipientKey)
	if err != nil {
		return err
	}

	if err := s.notificationRepo.MarkAllRead(ctx, kind, recipientID); err != nil {
		return apperr.Storage(err, "mark notifications read")
	}

	return nil
}

func resolveRecipient(sess *auth.Session, recipientKey string) (model.RecipientKind, string, error) {
	if recipientKey == model.AdminRecipientKey {
		if !sess.IsAdmin() {
			return "", "", apperr.Auth("admin notifications require an admin session")
		}
		return model.RecipientAdmin, "", nil
	}

	if !sess.Owns(recipientKey) {
		return "", "", apperr.Auth("notifications belong to another seller")
	}
	return model.RecipientSeller, recipientKey, nil
}
