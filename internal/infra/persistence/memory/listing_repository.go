// Package memory provides an in-memory implementation of the inventory
// store. It evaluates the same predicate expressions as the PostgreSQL
// adapter and backs fixture-driven tests and local development without a
// database.
package memory

import (
	"context"
	"sort"
	"strings"

	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/errors"
)

// ListingRepository holds a fixed inventory. It is safe for concurrent reads;
// the inventory itself is immutable after construction.
type ListingRepository struct {
	listings []*entity.Listing
}

// NewListingRepository creates an in-memory inventory from the given listings.
func NewListingRepository(listings []*entity.Listing) *ListingRepository {
	return &ListingRepository{
		listings: append([]*entity.Listing(nil), listings...),
	}
}

var _ repository.ListingRepository = (*ListingRepository)(nil)

// FindListings evaluates the predicate against the inventory, applying the
// same ordering and cap semantics as the SQL adapter.
func (repo *ListingRepository) FindListings(_ context.Context, predicate query.Expr, sortBy query.Sort, limit int) ([]*entity.Listing, error) {
	var matched []*entity.Listing
	for _, listing := range repo.listings {
		ok, err := matches(predicate, listing)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, listing)
		}
	}

	orderListings(matched, sortBy)

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

// CountListings counts matching listings.
func (repo *ListingRepository) CountListings(_ context.Context, predicate query.Expr) (int64, error) {
	var count int64
	for _, listing := range repo.listings {
		ok, err := matches(predicate, listing)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}

	return count, nil
}

// matches evaluates one expression node against one listing. A nil
// expression is the identity and matches everything.
func matches(expr query.Expr, listing *entity.Listing) (bool, error) {
	if expr == nil {
		return true, nil
	}

	switch e := expr.(type) {
	case query.Eq:
		value, err := fieldValue(listing, e.Field)
		if err != nil {
			return false, err
		}

		return valuesEqual(value, e.Value), nil

	case query.In:
		value, err := fieldValue(listing, e.Field)
		if err != nil {
			return false, err
		}
		for _, candidate := range e.Values {
			if valuesEqual(value, candidate) {
				return true, nil
			}
		}

		return false, nil

	case query.Range:
		value, err := numericFieldValue(listing, e.Field)
		if err != nil {
			return false, err
		}
		if e.Min != nil && value < *e.Min {
			return false, nil
		}
		if e.Max != nil && value > *e.Max {
			return false, nil
		}

		return true, nil

	case query.Like:
		value, err := fieldValue(listing, e.Field)
		if err != nil {
			return false, err
		}
		text, _ := value.(string)
		haystack := strings.ToLower(text)
		needle := strings.ToLower(e.Value)
		if e.Kind == query.MatchPrefix {
			return strings.HasPrefix(haystack, needle), nil
		}

		return strings.Contains(haystack, needle), nil

	case query.And:
		for _, sub := range e.Exprs {
			ok, err := matches(sub, listing)
			if err != nil || !ok {
				return false, err
			}
		}

		return true, nil

	case query.Or:
		for _, sub := range e.Exprs {
			ok, err := matches(sub, listing)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}

		return false, nil

	case query.Not:
		ok, err := matches(e.Expr, listing)
		if err != nil {
			return false, err
		}

		return !ok, nil

	default:
		return false, errors.Wrapf(repository.ErrUnknownField, "unsupported expression %T", expr)
	}
}

func fieldValue(listing *entity.Listing, field string) (any, error) {
	switch field {
	case query.FieldCity:
		return listing.City, nil
	case query.FieldNeighborhood:
		return listing.Neighborhood, nil
	case query.FieldState:
		return listing.State, nil
	case query.FieldZipCode:
		return listing.ZipCode, nil
	case query.FieldAddress:
		return listing.Address, nil
	case query.FieldPropertyType:
		return listing.PropertyType, nil
	case query.FieldStatus:
		return listing.Status, nil
	case query.FieldDescription:
		return listing.Description, nil
	default:
		return numericFieldValue(listing, field)
	}
}

func numericFieldValue(listing *entity.Listing, field string) (float64, error) {
	switch field {
	case query.FieldPrice:
		return listing.Price, nil
	case query.FieldBeds:
		return listing.Beds, nil
	case query.FieldBaths:
		return listing.Baths, nil
	case query.FieldSqft:
		return listing.Sqft, nil
	case query.FieldYearBuilt:
		return listing.YearBuilt, nil
	case query.FieldParking:
		return listing.Parking, nil
	case query.FieldLotSize:
		return listing.LotSize, nil
	default:
		return 0, errors.Wrapf(repository.ErrUnknownField, "field %q", field)
	}
}

// valuesEqual mirrors the SQL adapter's = and IN comparisons, which are
// case sensitive. Only Like is case insensitive on both adapters.
func valuesEqual(fieldValue, literal any) bool {
	return fieldValue == literal
}

func orderListings(listings []*entity.Listing, sortBy query.Sort) {
	sort.SliceStable(listings, func(i, j int) bool {
		less, equal := compareListings(listings[i], listings[j], sortBy.Column)
		if equal {
			// Stable tie-break on ID keeps repeated evaluations deterministic.
			return listings[i].ID.String() < listings[j].ID.String()
		}
		if sortBy.Direction == query.SortDesc {
			return !less
		}

		return less
	})
}

func compareListings(a, b *entity.Listing, column string) (less, equal bool) {
	switch column {
	case query.FieldPrice:
		return a.Price < b.Price, a.Price == b.Price
	case query.FieldBeds:
		return a.Beds < b.Beds, a.Beds == b.Beds
	case query.FieldBaths:
		return a.Baths < b.Baths, a.Baths == b.Baths
	case query.FieldSqft:
		return a.Sqft < b.Sqft, a.Sqft == b.Sqft
	case query.FieldYearBuilt:
		return a.YearBuilt < b.YearBuilt, a.YearBuilt == b.YearBuilt
	case query.FieldCity:
		return a.City < b.City, a.City == b.City
	default:
		return a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
	}
}
