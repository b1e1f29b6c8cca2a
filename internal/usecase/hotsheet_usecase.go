package usecase

import (
	"context"

	"hotsheet/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryReport summarizes one DeliverNew run.
type DeliveryReport struct {
	HotsheetID uuid.UUID `json:"hotsheet_id"`
	ListingIDs []string  `json:"listing_ids"` // IDs selected and handed to the dispatcher.
	Dispatched bool      `json:"dispatched"`  // False when nothing new was found.
}

// HotsheetUsecase manages persisted criteria snapshots and their on-demand
// re-evaluation against live inventory.
type HotsheetUsecase interface {
	// CreateHotsheet validates the filter and stores a frozen snapshot of it.
	CreateHotsheet(ctx context.Context, ownerID uuid.UUID, name string, filter map[string]any) (*entity.Hotsheet, error)

	// GetHotsheet retrieves one hotsheet owned by the agent.
	GetHotsheet(ctx context.Context, ownerID, id uuid.UUID) (*entity.Hotsheet, error)

	// ListHotsheets retrieves all hotsheets owned by the agent.
	ListHotsheets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotsheet, error)

	// EditCriteria replaces the whole criteria snapshot. The edit only
	// applies when version matches the stored one; no partial-field patching
	// happens at this layer.
	EditCriteria(ctx context.Context, ownerID, id uuid.UUID, version int64, filter map[string]any) (*entity.Hotsheet, error)

	// SetActive pauses or resumes a hotsheet without touching its criteria.
	SetActive(ctx context.Context, ownerID, id uuid.UUID, isActive bool) error

	// DeleteHotsheet removes a hotsheet.
	DeleteHotsheet(ctx context.Context, ownerID, id uuid.UUID) error

	// CurrentMatches re-compiles the stored criteria and evaluates it against
	// the live inventory. Never a cached result.
	CurrentMatches(ctx context.Context, ownerID, id uuid.UUID) ([]*entity.Listing, error)

	// NewSinceLastDelivery returns current matches minus already-delivered
	// listing IDs.
	NewSinceLastDelivery(ctx context.Context, ownerID, id uuid.UUID) ([]*entity.Listing, error)

	// DeliverNew selects the undelivered matches, hands them to the delivery
	// dispatcher and marks them delivered. A dispatch failure leaves the
	// delivered set untouched.
	DeliverNew(ctx context.Context, ownerID, id uuid.UUID) (*DeliveryReport, error)
}
