package impl

import (
	"context"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type inboxService struct {
	notifications repository.NotificationRepository
	cfg           *config.Config
}

// NewInboxService creates the recipient-facing inbox use case.
func NewInboxService(notifications repository.NotificationRepository, cfg *config.Config) usecase.InboxUsecase {
	return &inboxService{
		notifications: notifications,
		cfg:           cfg,
	}
}

// List returns the user's notifications newest-first.
func (s *inboxService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = s.cfg.Dispatch.DefaultPageSize
	}

	return s.notifications.ListByRecipient(ctx, userID, unreadOnly, limit, offset)
}

// MarkRead stamps a notification as read for its owner.
func (s *inboxService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.notifications.MarkRead(ctx, notificationID, userID)
}

// UnreadCount returns the user's unread notification count.
func (s *inboxService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.CountUnread(ctx, userID)
}
