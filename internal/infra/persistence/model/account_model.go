package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// It represents a platform account (individual, business, or organization).
type AccountModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind           string     `gorm:"type:text;not null;index"`
	Name           string     `gorm:"type:text;not null"`
	PlanTier       string     `gorm:"type:text"`
	PlanSelectedAt *time.Time `gorm:"type:timestamptz"`
	Latitude       *float64   `gorm:"type:decimal(10,8)"`
	Longitude      *float64   `gorm:"type:decimal(11,8)"`
	Street         string     `gorm:"type:text"`
	City           string     `gorm:"type:text"`
	State          string     `gorm:"type:text"`
	Zip            string     `gorm:"type:text"`
	Country        string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
