// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel is the GORM-specific struct for the 'listings' table. The
// inventory is read-only from this service's perspective; the table is fed by
// the ingestion pipeline.
type ListingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Address      string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100);index"`
	Neighborhood string    `gorm:"type:varchar(100);index"`
	State        string    `gorm:"type:varchar(2);index"`
	ZipCode      string    `gorm:"type:varchar(10)"`
	Price        float64   `gorm:"type:decimal(14,2);index"`
	Beds         float64   `gorm:"type:decimal(4,1)"`
	Baths        float64   `gorm:"type:decimal(4,1)"`
	Sqft         float64
	YearBuilt    float64
	Parking      float64
	LotSize      float64
	PropertyType string `gorm:"type:varchar(50);index"`
	Status       string `gorm:"type:varchar(20);index"`
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
