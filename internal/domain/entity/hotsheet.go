// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hotsheet is a named, persisted criteria snapshot owned by an agent.
// The snapshot is frozen at creation/edit time and is never re-derived from
// live UI state; re-evaluation against the inventory happens on demand.
type Hotsheet struct {
	ID         uuid.UUID      `json:"id"`          // The Global Unique Identifier (GUID) for the hotsheet.
	OwnerID    uuid.UUID      `json:"owner_id"`    // The agent who owns this hotsheet.
	Name       string         `json:"name"`        // User-chosen display name.
	Criteria   map[string]any `json:"criteria"`    // Frozen criteria document (schema-on-read).
	Delivered  []string       `json:"delivered"`   // Listing IDs already surfaced to the owner. Append-only.
	IsActive   bool           `json:"is_active"`   // Inactive hotsheets are kept but never delivered.
	Version    int64          `json:"version"`     // Optimistic concurrency token, bumped on every criteria edit.
	CreatedAt  time.Time      `json:"created_at"`  // Timestamp of when the hotsheet was created.
	UpdatedAt  time.Time      `json:"updated_at"`  // Timestamp of the last modification.
}
