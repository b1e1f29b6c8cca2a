// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"hotsheet/internal/domain/entity"
)

// SearchUsecase compiles raw UI filter documents and evaluates them against
// the live inventory.
type SearchUsecase interface {
	// Search returns matching listings, ordered and capped at the configured
	// hard maximum regardless of how broad the filter is.
	Search(ctx context.Context, filter map[string]any) ([]*entity.Listing, error)

	// CountMatches returns the number of matching listings without
	// transferring records.
	CountMatches(ctx context.Context, filter map[string]any) (int64, error)
}
