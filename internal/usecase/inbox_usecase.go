package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxUsecase defines the recipient-facing notification operations.
type InboxUsecase interface {
	// List returns the user's notifications newest-first.
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead stamps a notification as read. Already-read notifications
	// are left untouched.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// UnreadCount returns the user's unread notification count.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
