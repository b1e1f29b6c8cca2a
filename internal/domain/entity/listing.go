// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents a single property in the live inventory. This subsystem
// treats listings as read-only; inventory ingestion is owned elsewhere.
type Listing struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the listing.
	Address      string    `json:"address"`       // Street address, e.g. "12 Beacon St".
	City         string    `json:"city"`          // City the listing is located in.
	Neighborhood string    `json:"neighborhood"`  // Neighborhood within the city; empty when unknown.
	State        string    `json:"state"`         // Two-letter state code.
	ZipCode      string    `json:"zip_code"`      // Postal code.
	Price        float64   `json:"price"`         // Asking price in whole dollars.
	Beds         float64   `json:"beds"`          // Number of bedrooms.
	Baths        float64   `json:"baths"`         // Number of bathrooms; half baths count as 0.5.
	Sqft         float64   `json:"sqft"`          // Interior living area in square feet.
	YearBuilt    float64   `json:"year_built"`    // Construction year; 0 when unknown.
	Parking      float64   `json:"parking"`       // Number of parking spaces.
	LotSize      float64   `json:"lot_size"`      // Lot size in square feet.
	PropertyType string    `json:"property_type"` // Storage vocabulary, e.g. "Condominium".
	Status       string    `json:"status"`        // Listing status, e.g. "ACT", "PND".
	Description  string    `json:"description"`   // Free-text remarks used for keyword matching.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when the listing entered the inventory.
}
