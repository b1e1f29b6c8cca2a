package postgres

import (
	"testing"

	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestBuildPredicate_NilIsEmptyCondition(t *testing.T) {
	condition, args, err := buildPredicate(nil, listingColumns)
	require.NoError(t, err)
	assert.Empty(t, condition)
	assert.Nil(t, args)
}

func TestBuildPredicate_Eq(t *testing.T) {
	condition, args, err := buildPredicate(query.Eq{Field: query.FieldCity, Value: "Boston"}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "city = ?", condition)
	assert.Equal(t, []any{"Boston"}, args)
}

func TestBuildPredicate_In(t *testing.T) {
	condition, args, err := buildPredicate(query.In{
		Field:  query.FieldPropertyType,
		Values: []any{"Condominium", "Single Family"},
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "property_type IN (?, ?)", condition)
	assert.Equal(t, []any{"Condominium", "Single Family"}, args)
}

func TestBuildPredicate_EmptyInMatchesNothing(t *testing.T) {
	condition, args, err := buildPredicate(query.In{Field: query.FieldCity}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", condition)
	assert.Nil(t, args)
}

func TestBuildPredicate_Range(t *testing.T) {
	condition, args, err := buildPredicate(query.Range{
		Field: query.FieldPrice,
		Min:   floatPtr(100000),
		Max:   floatPtr(500000),
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "(price >= ? AND price <= ?)", condition)
	assert.Equal(t, []any{float64(100000), float64(500000)}, args)
}

func TestBuildPredicate_RangeMinOnly(t *testing.T) {
	condition, args, err := buildPredicate(query.Range{
		Field: query.FieldBeds,
		Min:   floatPtr(2),
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "(beds >= ?)", condition)
	assert.Equal(t, []any{float64(2)}, args)
}

func TestBuildPredicate_LikeContains(t *testing.T) {
	condition, args, err := buildPredicate(query.Like{
		Field: query.FieldDescription,
		Value: "pool",
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, `description ILIKE ? ESCAPE '\'`, condition)
	assert.Equal(t, []any{"%pool%"}, args)
}

func TestBuildPredicate_LikePrefix(t *testing.T) {
	condition, args, err := buildPredicate(query.Like{
		Field: query.FieldZipCode,
		Value: "021",
		Kind:  query.MatchPrefix,
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, `zip_code ILIKE ? ESCAPE '\'`, condition)
	assert.Equal(t, []any{"021%"}, args)
}

func TestBuildPredicate_LikeEscapesMetacharacters(t *testing.T) {
	condition, args, err := buildPredicate(query.Like{
		Field: query.FieldDescription,
		Value: `50%_off\now`,
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, `description ILIKE ? ESCAPE '\'`, condition)
	assert.Equal(t, []any{`%50\%\_off\\now%`}, args)
}

func TestBuildPredicate_Junctions(t *testing.T) {
	expr := query.And{Exprs: []query.Expr{
		query.Eq{Field: query.FieldState, Value: "MA"},
		query.Or{Exprs: []query.Expr{
			query.Eq{Field: query.FieldCity, Value: "Boston"},
			query.Eq{Field: query.FieldCity, Value: "Cambridge"},
		}},
	}}

	condition, args, err := buildPredicate(expr, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "(state = ? AND (city = ? OR city = ?))", condition)
	assert.Equal(t, []any{"MA", "Boston", "Cambridge"}, args)
}

func TestBuildPredicate_Not(t *testing.T) {
	condition, args, err := buildPredicate(query.Not{
		Expr: query.Like{Field: query.FieldDescription, Value: "pool"},
	}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, `NOT (description ILIKE ? ESCAPE '\')`, condition)
	assert.Equal(t, []any{"%pool%"}, args)
}

func TestBuildPredicate_NotIdentityMatchesNothing(t *testing.T) {
	condition, args, err := buildPredicate(query.Not{}, listingColumns)
	require.NoError(t, err)
	assert.Equal(t, "1 = 0", condition)
	assert.Nil(t, args)
}

func TestBuildPredicate_UnknownFieldRejected(t *testing.T) {
	_, _, err := buildPredicate(query.Eq{Field: "owner_secret", Value: 1}, listingColumns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnknownField))
}

func TestBuildPredicate_CompiledCriteria(t *testing.T) {
	predicate := criteria.Compile(criteria.Normalize(map[string]any{
		"state":         "MA",
		"selectedTowns": []any{"Boston-Back Bay", "Cambridge"},
		"priceMax":      float64(900000),
	}))

	condition, args, err := buildPredicate(predicate, listingColumns)
	require.NoError(t, err)
	assert.Equal(t,
		"((state = ? AND (city IN (?) OR (city = ? AND neighborhood = ?))) AND (price <= ?))",
		condition)
	assert.Equal(t, []any{"MA", "Cambridge", "Boston", "Back Bay", float64(900000)}, args)
}

func TestOrderClause_WhitelistsColumn(t *testing.T) {
	assert.Equal(t, "price ASC", orderClause(query.Sort{Column: query.FieldPrice, Direction: query.SortAsc}))
	assert.Equal(t, "created_at DESC", orderClause(query.Sort{Column: "evil; DROP TABLE", Direction: query.SortDesc}))
}
