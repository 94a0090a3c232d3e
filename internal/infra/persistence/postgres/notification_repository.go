package postgres

import (
	"context"
	"encoding/json"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateInBatches persists fan-out records in batches. Run inside a
// transaction, the whole insert succeeds or fails as a unit.
func (repo *notificationRepository) CreateInBatches(ctx context.Context, notifications []*entity.Notification, batchSize int) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationM, err := fromNotificationDomain(notification)
		if err != nil {
			return errors.Wrap(err, "failed to serialize notification")
		}
		notificationModels = append(notificationModels, notificationM)
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, batchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidState.WithMessage("dispatch already fanned out to a recipient")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WithMessage("invalid dispatch or recipient reference in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications in batch")
	}

	return nil
}

// ListByRecipient retrieves a recipient's notifications newest-first.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")

	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// MarkRead stamps ReadAt on an unread notification owned by recipientID.
// Re-marking an already-read notification is a no-op.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", id, recipientID).
		Update("read_at", time.Now())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing record from an already-read one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.NotificationModel{}).
			Where("id = ? AND recipient_id = ?", id, recipientID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if count == 0 {
			return domainerrors.ErrDispatchNotFound.WithMessage("notification not found")
		}
	}

	return nil
}

// CountUnread returns the recipient's unread notification count.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// ListDigestsBySender groups a sender's delivered fan-out records by content
// and creation minute. Rows created in the same minute with identical content
// collapse into one bucket with a recipient count.
func (repo *notificationRepository) ListDigestsBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]*entity.DispatchDigest, error) {
	var digests []*entity.DispatchDigest

	query := `
		SELECT n.title,
		       n.body,
		       n.url,
		       date_trunc('minute', n.created_at) AS minute_bucket,
		       COUNT(*)                           AS recipient_count
		FROM notifications n
		JOIN dispatches d ON d.id = n.dispatch_id
		WHERE d.sender_id = ?
		GROUP BY n.title, n.body, n.url, date_trunc('minute', n.created_at)
		ORDER BY minute_bucket DESC
		LIMIT ? OFFSET ?`

	if err := repo.db.WithContext(ctx).
		Raw(query, senderID, limit, offset).
		Scan(&digests).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dispatch digests")
	}

	return digests, nil
}

// toNotificationDomain converts a GORM model to a domain entity.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	var payload map[string]string
	if len(data.Data) > 0 {
		if err := json.Unmarshal(data.Data, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification data")
		}
	}

	return &entity.Notification{
		ID:          data.ID,
		DispatchID:  data.DispatchID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		Data:        payload,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}, nil
}

// fromNotificationDomain converts a domain entity to a GORM model.
func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	var payload []byte
	if len(data.Data) > 0 {
		encoded, err := json.Marshal(data.Data)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification data")
		}
		payload = encoded
	}

	return &model.NotificationModel{
		ID:          data.ID,
		DispatchID:  data.DispatchID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Body:        data.Body,
		URL:         data.URL,
		Data:        payload,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}, nil
}
