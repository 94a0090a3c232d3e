package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
// One row per (user, source); upserts replace the previous sample.
type LocationSampleModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_location_samples_user_source"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null;index"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null;index"`
	Source     string    `gorm:"type:text;not null;uniqueIndex:idx_location_samples_user_source"`
	RecordedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
