package postgres

import (
	"strings"

	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/errors"
)

// listingColumns maps predicate fields to listing table columns. The mapping
// doubles as a whitelist: predicates cannot reach columns that are not listed
// here, and every literal value travels as a bind argument.
var listingColumns = map[string]string{
	query.FieldCity:         "city",
	query.FieldNeighborhood: "neighborhood",
	query.FieldState:        "state",
	query.FieldZipCode:      "zip_code",
	query.FieldAddress:      "address",
	query.FieldPrice:        "price",
	query.FieldBeds:         "beds",
	query.FieldBaths:        "baths",
	query.FieldSqft:         "sqft",
	query.FieldYearBuilt:    "year_built",
	query.FieldParking:      "parking",
	query.FieldLotSize:      "lot_size",
	query.FieldPropertyType: "property_type",
	query.FieldStatus:       "status",
	query.FieldDescription:  "description",
}

// buildPredicate renders an expression into a parameterized SQL condition.
// A nil expression yields an empty condition (no WHERE clause at all).
func buildPredicate(expr query.Expr, columns map[string]string) (string, []any, error) {
	if expr == nil {
		return "", nil, nil
	}

	switch e := expr.(type) {
	case query.Eq:
		column, err := resolveColumn(columns, e.Field)
		if err != nil {
			return "", nil, err
		}

		return column + " = ?", []any{e.Value}, nil

	case query.In:
		column, err := resolveColumn(columns, e.Field)
		if err != nil {
			return "", nil, err
		}
		if len(e.Values) == 0 {
			// Empty membership matches nothing.
			return "1 = 0", nil, nil
		}
		placeholders := strings.Repeat("?, ", len(e.Values))

		return column + " IN (" + placeholders[:len(placeholders)-2] + ")", e.Values, nil

	case query.Range:
		return buildRange(columns, e)

	case query.Like:
		column, err := resolveColumn(columns, e.Field)
		if err != nil {
			return "", nil, err
		}
		pattern := escapeLikeValue(e.Value) + "%"
		if e.Kind == query.MatchContains {
			pattern = "%" + pattern
		}

		return column + ` ILIKE ? ESCAPE '\'`, []any{pattern}, nil

	case query.And:
		return buildJunction(columns, e.Exprs, " AND ")

	case query.Or:
		return buildJunction(columns, e.Exprs, " OR ")

	case query.Not:
		inner, args, err := buildPredicate(e.Expr, columns)
		if err != nil {
			return "", nil, err
		}
		if inner == "" {
			// NOT identity matches nothing.
			return "1 = 0", nil, nil
		}

		return "NOT (" + inner + ")", args, nil

	default:
		return "", nil, errors.Wrapf(repository.ErrUnknownField, "unsupported expression %T", expr)
	}
}

func buildRange(columns map[string]string, e query.Range) (string, []any, error) {
	column, err := resolveColumn(columns, e.Field)
	if err != nil {
		return "", nil, err
	}

	var conditions []string
	var args []any
	if e.Min != nil {
		conditions = append(conditions, column+" >= ?")
		args = append(args, *e.Min)
	}
	if e.Max != nil {
		conditions = append(conditions, column+" <= ?")
		args = append(args, *e.Max)
	}
	if len(conditions) == 0 {
		return "", nil, nil
	}

	return "(" + strings.Join(conditions, " AND ") + ")", args, nil
}

func buildJunction(columns map[string]string, exprs []query.Expr, op string) (string, []any, error) {
	var conditions []string
	var args []any
	for _, sub := range exprs {
		condition, subArgs, err := buildPredicate(sub, columns)
		if err != nil {
			return "", nil, err
		}
		if condition == "" {
			continue
		}
		conditions = append(conditions, condition)
		args = append(args, subArgs...)
	}

	switch len(conditions) {
	case 0:
		return "", nil, nil
	case 1:
		return conditions[0], args, nil
	default:
		return "(" + strings.Join(conditions, op) + ")", args, nil
	}
}

func resolveColumn(columns map[string]string, field string) (string, error) {
	column, ok := columns[field]
	if !ok {
		return "", errors.Wrapf(repository.ErrUnknownField, "field %q", field)
	}

	return column, nil
}

// escapeLikeValue neutralizes LIKE metacharacters so user-entered values are
// always literals.
func escapeLikeValue(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(value)
}
