// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/errors"
)

// Domain-specific errors for inventory access.
var (
	// ErrTransientStore is returned when the underlying store fails in a
	// retryable way. Callers may retry; this layer never retries implicitly.
	ErrTransientStore = errors.New("transient store failure")
	// ErrUnknownField is returned when a predicate references a field the
	// adapter has no column for. This is a programmer error, not user input.
	ErrUnknownField = errors.New("predicate references unknown field")
)

// ListingRepository is the match evaluator's view of the inventory store.
// A nil predicate is the identity and matches every record.
type ListingRepository interface {
	// FindListings returns listings matching the predicate, ordered by sort
	// with ties broken by listing ID ascending, capped at limit records.
	FindListings(ctx context.Context, predicate query.Expr, sort query.Sort, limit int) ([]*entity.Listing, error)

	// CountListings returns the number of matching listings without
	// materializing records.
	CountListings(ctx context.Context, predicate query.Expr) (int64, error)
}
