package model

import "github.com/google/uuid"

// CoverageAreaModel is the GORM-specific struct for the 'coverage_areas'
// table. Rows are owned by the profile subsystem; this service only reads
// them for audience estimation.
type CoverageAreaModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	State        string    `gorm:"type:varchar(2);not null;index"`
	County       string    `gorm:"type:varchar(100)"`
	City         string    `gorm:"type:varchar(100);index"`
	Neighborhood string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (CoverageAreaModel) TableName() string {
	return "coverage_areas"
}
