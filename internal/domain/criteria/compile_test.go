package criteria

import (
	"testing"

	"hotsheet/internal/domain/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_EmptyCriteriaIsIdentity(t *testing.T) {
	assert.Nil(t, Compile(Default()))
	assert.Nil(t, Compile(Normalize(map[string]any{"bogus_key": "ignored"})))
}

func TestCompile_GeoUnionOfCityAndNeighborhoodSelectors(t *testing.T) {
	crit := Normalize(map[string]any{
		"state":         "MA",
		"selectedTowns": []any{"Cambridge", "Boston-Back Bay"},
	})

	expr := Compile(crit)
	and, ok := expr.(query.And)
	require.True(t, ok)
	require.Len(t, and.Exprs, 2)

	assert.Equal(t, query.Eq{Field: query.FieldState, Value: "MA"}, and.Exprs[0])

	towns, ok := and.Exprs[1].(query.Or)
	require.True(t, ok)
	require.Len(t, towns.Exprs, 2)
	assert.Equal(t, query.In{Field: query.FieldCity, Values: []any{"Cambridge"}}, towns.Exprs[0])
	assert.Equal(t, query.And{Exprs: []query.Expr{
		query.Eq{Field: query.FieldCity, Value: "Boston"},
		query.Eq{Field: query.FieldNeighborhood, Value: "Back Bay"},
	}}, towns.Exprs[1])
}

func TestCompile_SingleCitySelectorUnwrapped(t *testing.T) {
	crit := Normalize(map[string]any{"selectedTowns": []any{"Cambridge"}})

	assert.Equal(t, query.In{Field: query.FieldCity, Values: []any{"Cambridge"}}, Compile(crit))
}

func TestCompile_PriceOverrideFlagsAreAuthoritative(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": float64(100000),
		"priceMax": float64(500000),
		"hasNoMin": true,
	})

	expr := Compile(crit)
	rng, ok := expr.(query.Range)
	require.True(t, ok)
	assert.Equal(t, query.FieldPrice, rng.Field)
	assert.Nil(t, rng.Min)
	require.NotNil(t, rng.Max)
	assert.Equal(t, float64(500000), *rng.Max)
}

func TestCompile_BothOverrideFlagsDropPriceClause(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": float64(100000),
		"priceMax": float64(500000),
		"hasNoMin": true,
		"hasNoMax": true,
	})

	assert.Nil(t, Compile(crit))
}

func TestCompile_PropertyTypeTranslation(t *testing.T) {
	crit := Normalize(map[string]any{
		"propertyTypes": []any{"single_family", "condo"},
	})

	assert.Equal(t, query.In{
		Field:  query.FieldPropertyType,
		Values: []any{"Single Family", "Condominium"},
	}, Compile(crit))
}

func TestCompile_UnmappedPropertyTypePassesThrough(t *testing.T) {
	crit := Normalize(map[string]any{
		"propertyTypes": []any{"houseboat"},
	})

	assert.Equal(t, query.In{
		Field:  query.FieldPropertyType,
		Values: []any{"houseboat"},
	}, Compile(crit))
}

func TestCompile_KeywordModeAny(t *testing.T) {
	crit := Normalize(map[string]any{"keywords": "pool, garage"})

	assert.Equal(t, query.Or{Exprs: []query.Expr{
		query.Like{Field: query.FieldDescription, Value: "pool"},
		query.Like{Field: query.FieldDescription, Value: "garage"},
	}}, Compile(crit))
}

func TestCompile_KeywordModeAll(t *testing.T) {
	crit := Normalize(map[string]any{
		"keywords":    "pool, garage",
		"keywordMode": "all",
	})

	assert.Equal(t, query.And{Exprs: []query.Expr{
		query.Like{Field: query.FieldDescription, Value: "pool"},
		query.Like{Field: query.FieldDescription, Value: "garage"},
	}}, Compile(crit))
}

func TestCompile_KeywordExcludeIsNegated(t *testing.T) {
	crit := Normalize(map[string]any{"keywordsExclude": "fixer-upper"})

	assert.Equal(t, query.Not{
		Expr: query.Like{Field: query.FieldDescription, Value: "fixer-upper"},
	}, Compile(crit))
}

func TestCompile_AddressClauses(t *testing.T) {
	crit := Normalize(map[string]any{
		"zipCode":      "02139",
		"streetNumber": "42",
		"streetName":   "Main",
	})

	assert.Equal(t, query.And{Exprs: []query.Expr{
		query.Like{Field: query.FieldZipCode, Value: "02139", Kind: query.MatchPrefix},
		query.Like{Field: query.FieldAddress, Value: "42"},
		query.Like{Field: query.FieldAddress, Value: "Main"},
	}}, Compile(crit))
}

func TestCompile_IsDeterministic(t *testing.T) {
	doc := map[string]any{
		"state":         "MA",
		"selectedTowns": []any{"Boston-Back Bay", "Cambridge"},
		"priceMax":      float64(900000),
		"bedsMin":       float64(2),
		"keywords":      "pool",
	}

	first := Compile(Normalize(doc))
	second := Compile(Normalize(doc))
	assert.Equal(t, first, second)
}

func TestSort_Directions(t *testing.T) {
	crit := Default()
	assert.Equal(t, query.Sort{Column: "created_at", Direction: query.SortDesc}, crit.Sort())

	crit.SortColumn = "price"
	crit.SortDirection = "asc"
	assert.Equal(t, query.Sort{Column: "price", Direction: query.SortAsc}, crit.Sort())
}
