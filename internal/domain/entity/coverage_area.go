// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// CoverageArea is a geographic region a party has declared interest in.
// It is owned by the profile subsystem; this service only reads it to size
// notification audiences.
type CoverageArea struct {
	ID           uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the coverage area.
	OwnerID      uuid.UUID `json:"owner_id"`     // The interested party (agent or buyer).
	State        string    `json:"state"`        // Two-letter state code.
	County       string    `json:"county"`       // County name; empty means the whole state.
	City         string    `json:"city"`         // City name; empty means the whole county.
	Neighborhood string    `json:"neighborhood"` // Neighborhood; empty means the whole city.
}
