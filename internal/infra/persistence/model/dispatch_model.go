package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchModel is the GORM-specific struct for the 'dispatches' table.
// Targeting selectors and metadata are stored as JSONB and serialized by the
// repository mappers.
type DispatchModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Mode        string    `gorm:"type:text;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null"`
	URL         string    `gorm:"type:text"`
	Targets     []byte    `gorm:"type:jsonb"`
	ReceiverIDs []byte    `gorm:"type:jsonb"`
	CenterLat   *float64  `gorm:"type:decimal(10,8)"`
	CenterLon   *float64  `gorm:"type:decimal(11,8)"`
	RadiusMiles *float64  `gorm:"type:decimal(8,3)"`
	Channel     string    `gorm:"type:text;not null;default:'both'"`
	Status      string    `gorm:"type:text;not null;index;default:'pending'"`
	Metadata    []byte    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
	ApprovedAt  *time.Time
	SentAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DispatchModel) TableName() string {
	return "dispatches"
}
