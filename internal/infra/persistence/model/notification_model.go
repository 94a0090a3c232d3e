package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one per-recipient fan-out copy of a dispatch.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DispatchID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_notifications_dispatch_recipient"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_notifications_dispatch_recipient"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:text"`
	Data        []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
	ReadAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
