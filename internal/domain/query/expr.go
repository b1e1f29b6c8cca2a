// Package query defines the structured predicate expressions compiled from
// search criteria. Expressions are pure data: store adapters translate them
// into parameterized SQL or evaluate them in memory, so literal values never
// get interpolated into a query string.
package query

// Field names understood by store adapters. Adapters map these to their own
// columns; an expression referencing anything else is a programmer error.
const (
	FieldCity         = "city"
	FieldNeighborhood = "neighborhood"
	FieldState        = "state"
	FieldZipCode      = "zip_code"
	FieldAddress      = "address"
	FieldPrice        = "price"
	FieldBeds         = "beds"
	FieldBaths        = "baths"
	FieldSqft         = "sqft"
	FieldYearBuilt    = "year_built"
	FieldParking      = "parking"
	FieldLotSize      = "lot_size"
	FieldPropertyType = "property_type"
	FieldStatus       = "status"
	FieldDescription  = "description"
)

// Expr is a node in a compiled predicate. A nil Expr is the identity
// predicate: it matches every record.
type Expr interface {
	isExpr()
}

// Eq matches records whose field equals the value exactly.
type Eq struct {
	Field string
	Value any
}

// In matches records whose field equals any of the values.
type In struct {
	Field  string
	Values []any
}

// Range matches records whose numeric field lies within the given bounds.
// A nil bound means that side is unconstrained. Both bounds are inclusive.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// MatchKind selects how a Like expression anchors its value.
type MatchKind int

const (
	// MatchContains matches the value anywhere in the field.
	MatchContains MatchKind = iota
	// MatchPrefix matches the value at the start of the field.
	MatchPrefix
)

// Like matches records whose string field contains (or starts with) the
// value, case-insensitively. The value is a literal, not a pattern; adapters
// are responsible for escaping their own wildcard syntax.
type Like struct {
	Field string
	Value string
	Kind  MatchKind
}

// And matches records that satisfy every sub-expression.
type And struct {
	Exprs []Expr
}

// Or matches records that satisfy at least one sub-expression.
type Or struct {
	Exprs []Expr
}

// Not matches records that do not satisfy the sub-expression.
type Not struct {
	Expr Expr
}

func (Eq) isExpr()    {}
func (In) isExpr()    {}
func (Range) isExpr() {}
func (Like) isExpr()  {}
func (And) isExpr()   {}
func (Or) isExpr()    {}
func (Not) isExpr()   {}

// NewAnd combines the non-nil expressions into a conjunction. It returns nil
// when nothing remains and the sole member unwrapped when only one remains.
func NewAnd(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return And{Exprs: kept}
	}
}

// NewOr combines the non-nil expressions into a disjunction, with the same
// simplification rules as NewAnd.
func NewOr(exprs ...Expr) Expr {
	kept := compact(exprs)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return Or{Exprs: kept}
	}
}

func compact(exprs []Expr) []Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}

	return kept
}

// SortDirection is the order applied to the sort column.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort describes the caller-requested ordering. Adapters break ties by
// listing ID ascending so repeated evaluations of an unchanged inventory are
// deterministic.
type Sort struct {
	Column    string
	Direction SortDirection
}
