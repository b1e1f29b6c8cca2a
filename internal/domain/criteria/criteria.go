// Package criteria holds the canonical, typed description of a listing
// search and the logic that turns loosely-typed UI filter documents into
// executable predicates.
package criteria

import (
	domainerrors "hotsheet/internal/domain/errors"
)

// Keyword combination modes.
const (
	KeywordModeAny = "any" // OR of per-term matches
	KeywordModeAll = "all" // AND of per-term matches
)

// GeoSelector is a (city, optional neighborhood) pair. An empty Neighborhood
// means "any listing in this city".
type GeoSelector struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

// Geo is the geography portion of a search.
type Geo struct {
	State     string        `json:"state,omitempty"`
	County    string        `json:"county,omitempty"`
	Selectors []GeoSelector `json:"selectors,omitempty"`
}

// PriceBounds carries the price filter. NoMin/NoMax are authoritative
// override flags, independent of whether Min/Max hold values: a caller may
// clear a bound without discarding the previously-entered number.
type PriceBounds struct {
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	NoMin bool     `json:"no_min,omitempty"`
	NoMax bool     `json:"no_max,omitempty"`
}

// Bounds is an optional inclusive numeric range. A nil side is unconstrained.
type Bounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Keywords filters on the listing description.
type Keywords struct {
	Include string `json:"include,omitempty"`
	Exclude string `json:"exclude,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

// Criteria is the canonical value object describing one search. It is plain
// data: compiling it has no side effects and two compilations of an equal
// value yield equal predicates.
type Criteria struct {
	Geo           Geo         `json:"geo"`
	Price         PriceBounds `json:"price"`
	PropertyTypes []string    `json:"property_types,omitempty"`
	Statuses      []string    `json:"statuses,omitempty"`
	Beds          Bounds      `json:"beds"`
	Baths         Bounds      `json:"baths"`
	Sqft          Bounds      `json:"sqft"`
	YearBuilt     Bounds      `json:"year_built"`
	Parking       Bounds      `json:"parking"`
	LotSize       Bounds      `json:"lot_size"`
	Keywords      Keywords    `json:"keywords"`
	ZipCode       string      `json:"zip_code,omitempty"`
	StreetNumber  string      `json:"street_number,omitempty"`
	StreetName    string      `json:"street_name,omitempty"`
	Limit         int         `json:"limit,omitempty"`
	SortColumn    string      `json:"sort_column,omitempty"`
	SortDirection string      `json:"sort_direction,omitempty"`
}

// Default returns a fresh default Criteria value. Callers get their own copy
// every time; there is no shared default to mutate by accident.
func Default() Criteria {
	return Criteria{
		Keywords:      Keywords{Mode: KeywordModeAny},
		SortColumn:    "created_at",
		SortDirection: "desc",
	}
}

// Validate rejects criteria that violate an invariant before compilation.
// Both price bounds present, both override flags off and min above max is the
// one rejected shape; everything else degrades at compile time instead.
func (c Criteria) Validate() error {
	if !c.Price.NoMin && !c.Price.NoMax &&
		c.Price.Min != nil && c.Price.Max != nil &&
		*c.Price.Min > *c.Price.Max {
		return domainerrors.ErrCriteriaInvalid.WithDetails("price minimum exceeds price maximum")
	}

	return nil
}

// IsEmpty reports whether the criteria carries no filter at all, i.e. it
// compiles to the identity predicate.
func (c Criteria) IsEmpty() bool {
	return Compile(c) == nil
}
