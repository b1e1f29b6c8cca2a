// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hotsheet/internal/domain/criteria"
)

// CoverageAreaRepository is the recipient estimator's read-only view of the
// coverage-area store.
type CoverageAreaRepository interface {
	// CountOwnersInGeo returns the number of distinct parties whose declared
	// coverage area intersects the given geography. When the geography has no
	// city selectors the count falls back to state/county-level coverage,
	// which is intentionally approximate.
	CountOwnersInGeo(ctx context.Context, geo criteria.Geo) (int64, error)
}
