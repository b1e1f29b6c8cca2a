// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hotsheet/internal/domain/entity"
	"hotsheet/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for hotsheet persistence.
var (
	// ErrHotsheetNotFound is returned when a hotsheet is not found.
	ErrHotsheetNotFound = errors.New("hotsheet not found")
	// ErrVersionConflict is returned when an edit carries a stale version.
	ErrVersionConflict = errors.New("hotsheet version conflict")
)

// HotsheetRepository defines the interface for hotsheet-related database
// operations. Criteria snapshots are stored as opaque documents; delivered
// listing IDs are append-only.
type HotsheetRepository interface {
	// CreateHotsheet persists a new hotsheet with its frozen criteria snapshot.
	CreateHotsheet(ctx context.Context, hotsheet *entity.Hotsheet) error

	// FindHotsheetByID retrieves a hotsheet by its unique ID.
	FindHotsheetByID(ctx context.Context, id uuid.UUID) (*entity.Hotsheet, error)

	// FindHotsheetsByOwner retrieves all hotsheets owned by an agent.
	FindHotsheetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotsheet, error)

	// ReplaceCriteria atomically replaces the whole criteria snapshot.
	// The update only applies when expectedVersion matches the stored
	// version; a mismatch returns ErrVersionConflict.
	ReplaceCriteria(ctx context.Context, id uuid.UUID, criteria map[string]any, expectedVersion int64) error

	// UpdateHotsheetStatus updates the active flag of a hotsheet.
	UpdateHotsheetStatus(ctx context.Context, id uuid.UUID, isActive bool) error

	// MarkDelivered unions the listing IDs into the delivered set as a single
	// atomic store operation. IDs are never removed, even if a listing later
	// leaves the matching set.
	MarkDelivered(ctx context.Context, id uuid.UUID, listingIDs []string) error

	// DeleteHotsheet removes a hotsheet by its ID (soft delete).
	DeleteHotsheet(ctx context.Context, id uuid.UUID) error
}
