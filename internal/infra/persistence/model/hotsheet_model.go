package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HotsheetModel is the GORM-specific struct for the 'hotsheets' table.
// Criteria is the frozen snapshot document; DeliveredListingIDs grows
// monotonically via atomic array unions.
type HotsheetModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID             uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name                string         `gorm:"type:varchar(100);not null"`
	Criteria            datatypes.JSON `gorm:"type:jsonb;not null"`
	DeliveredListingIDs pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	IsActive            bool           `gorm:"not null;default:true"`
	Version             int64          `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HotsheetModel) TableName() string {
	return "hotsheets"
}
