package repository

import (
	"context"

	"github.com/google/uuid"

	"beacon/internal/domain/entity"
)

// NotificationRepository provides access to per-recipient fan-out records.
type NotificationRepository interface {
	// CreateInBatches inserts fan-out records in batches of batchSize. The
	// whole insert succeeds or fails as a unit when run inside a transaction.
	CreateInBatches(ctx context.Context, notifications []*entity.Notification, batchSize int) error

	// ListByRecipient returns a recipient's notifications newest-first.
	// When unreadOnly is true, read notifications are excluded.
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead stamps ReadAt on the notification owned by recipientID.
	// Marking an already-read notification is a no-op.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// CountUnread returns the recipient's unread notification count.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// ListDigestsBySender groups a sender's delivered fan-out records by
	// title, body, URL and creation minute, newest bucket first.
	ListDigestsBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.DispatchDigest, error)
}
