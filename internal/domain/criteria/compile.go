package criteria

import (
	"strings"

	"hotsheet/internal/domain/query"
)

// Compile turns a Criteria value into a structured predicate for a store
// adapter to execute. All literal values stay inside the AST so adapters can
// parameterize them; nothing here builds query strings. An all-absent
// criteria compiles to nil, the identity predicate.
func Compile(c Criteria) query.Expr {
	return query.NewAnd(
		compileGeo(c.Geo),
		compilePrice(c.Price),
		compilePropertyTypes(c.PropertyTypes),
		compileSet(query.FieldStatus, c.Statuses),
		compileBounds(query.FieldBeds, c.Beds),
		compileBounds(query.FieldBaths, c.Baths),
		compileBounds(query.FieldSqft, c.Sqft),
		compileBounds(query.FieldYearBuilt, c.YearBuilt),
		compileBounds(query.FieldParking, c.Parking),
		compileBounds(query.FieldLotSize, c.LotSize),
		compileKeywords(c.Keywords),
		compileAddress(c),
	)
}

// compileGeo builds the geography clause. Whole-city selectors and
// city+neighborhood selectors are unioned: a city-only "Boston" already
// matches every Boston listing, so a narrower "Boston-Back Bay" selector can
// only widen the match set, never shrink it.
func compileGeo(geo Geo) query.Expr {
	var cityOnly []any
	var pairs []query.Expr

	for _, sel := range geo.Selectors {
		if sel.City == "" {
			continue
		}
		if sel.Neighborhood == "" {
			cityOnly = append(cityOnly, sel.City)

			continue
		}
		pairs = append(pairs, query.And{Exprs: []query.Expr{
			query.Eq{Field: query.FieldCity, Value: sel.City},
			query.Eq{Field: query.FieldNeighborhood, Value: sel.Neighborhood},
		}})
	}

	var towns query.Expr
	if len(cityOnly) > 0 {
		towns = query.In{Field: query.FieldCity, Values: cityOnly}
	}
	towns = query.NewOr(append([]query.Expr{towns}, pairs...)...)

	var state query.Expr
	if geo.State != "" {
		state = query.Eq{Field: query.FieldState, Value: geo.State}
	}

	return query.NewAnd(state, towns)
}

// compilePrice applies the two-signal bound semantics: the NoMin/NoMax
// override flags are authoritative, so a retained Min value is ignored while
// NoMin is set. The flags exist so a caller can clear a bound without
// discarding the number behind it.
func compilePrice(price PriceBounds) query.Expr {
	bounds := Bounds{}
	if !price.NoMin {
		bounds.Min = price.Min
	}
	if !price.NoMax {
		bounds.Max = price.Max
	}

	return compileBounds(query.FieldPrice, bounds)
}

func compilePropertyTypes(types []string) query.Expr {
	if len(types) == 0 {
		return nil
	}

	mapped := make([]any, 0, len(types))
	for _, t := range types {
		mapped = append(mapped, StoragePropertyType(t))
	}

	return query.In{Field: query.FieldPropertyType, Values: mapped}
}

func compileSet(field string, values []string) query.Expr {
	if len(values) == 0 {
		return nil
	}

	anyValues := make([]any, 0, len(values))
	for _, v := range values {
		anyValues = append(anyValues, v)
	}

	return query.In{Field: field, Values: anyValues}
}

func compileBounds(field string, bounds Bounds) query.Expr {
	if bounds.Min == nil && bounds.Max == nil {
		return nil
	}

	return query.Range{Field: field, Min: bounds.Min, Max: bounds.Max}
}

// compileKeywords matches comma-separated terms against the description.
// Mode "any" ORs the per-term matches, "all" ANDs them; the exclude clause is
// the negation of the same combination. Include and exclude coexist and are
// ANDed together.
func compileKeywords(kw Keywords) query.Expr {
	include := compileTerms(kw.Include, kw.Mode)

	exclude := compileTerms(kw.Exclude, kw.Mode)
	if exclude != nil {
		exclude = query.Not{Expr: exclude}
	}

	return query.NewAnd(include, exclude)
}

func compileTerms(raw, mode string) query.Expr {
	var matches []query.Expr
	for _, term := range strings.Split(raw, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		matches = append(matches, query.Like{Field: query.FieldDescription, Value: term})
	}

	if mode == KeywordModeAll {
		return query.NewAnd(matches...)
	}

	return query.NewOr(matches...)
}

func compileAddress(c Criteria) query.Expr {
	var clauses []query.Expr
	if c.ZipCode != "" {
		clauses = append(clauses, query.Like{Field: query.FieldZipCode, Value: c.ZipCode, Kind: query.MatchPrefix})
	}
	if c.StreetNumber != "" {
		clauses = append(clauses, query.Like{Field: query.FieldAddress, Value: c.StreetNumber})
	}
	if c.StreetName != "" {
		clauses = append(clauses, query.Like{Field: query.FieldAddress, Value: c.StreetName})
	}

	return query.NewAnd(clauses...)
}

// Sort returns the caller-requested ordering for this criteria.
func (c Criteria) Sort() query.Sort {
	direction := query.SortAsc
	if strings.EqualFold(c.SortDirection, "desc") {
		direction = query.SortDesc
	}

	return query.Sort{Column: c.SortColumn, Direction: direction}
}
