package criteria

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_EmptyDocument(t *testing.T) {
	crit := Normalize(nil)

	assert.Equal(t, Default(), crit)
	assert.True(t, crit.IsEmpty())
}

func TestNormalize_CanonicalKeyWinsOverAlias(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin":  float64(200000),
		"price_min": float64(999999),
	})

	require.NotNil(t, crit.Price.Min)
	assert.Equal(t, float64(200000), *crit.Price.Min)
}

func TestNormalize_LegacyAliasesRecognized(t *testing.T) {
	crit := Normalize(map[string]any{
		"min_price": float64(100000),
		"max_price": float64(500000),
		"towns":     []any{"Boston"},
		"zip":       "02101",
	})

	require.NotNil(t, crit.Price.Min)
	assert.Equal(t, float64(100000), *crit.Price.Min)
	require.NotNil(t, crit.Price.Max)
	assert.Equal(t, float64(500000), *crit.Price.Max)
	assert.Equal(t, []GeoSelector{{City: "Boston"}}, crit.Geo.Selectors)
	assert.Equal(t, "02101", crit.ZipCode)
}

func TestNormalize_TownSplitting(t *testing.T) {
	crit := Normalize(map[string]any{
		"selectedTowns": []any{"Boston-Back Bay", "Cambridge", "  ", "Somerville - Davis"},
	})

	assert.Equal(t, []GeoSelector{
		{City: "Boston", Neighborhood: "Back Bay"},
		{City: "Cambridge"},
		{City: "Somerville", Neighborhood: "Davis"},
	}, crit.Geo.Selectors)
}

func TestNormalize_EmptyCollectionsEqualAbsent(t *testing.T) {
	absent := Normalize(map[string]any{"state": "MA"})
	empty := Normalize(map[string]any{
		"state":         "MA",
		"selectedTowns": []any{},
		"propertyTypes": []any{},
		"statuses":      []any{},
	})

	assert.Equal(t, absent, empty)
}

func TestNormalize_MalformedNumbersDropped(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": "not-a-number",
		"bedsMin":  map[string]any{"bogus": true},
		"bedsMax":  "3",
	})

	assert.Nil(t, crit.Price.Min)
	assert.Nil(t, crit.Beds.Min)
	require.NotNil(t, crit.Beds.Max)
	assert.Equal(t, float64(3), *crit.Beds.Max)
}

func TestNormalize_NumericCoercion(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": json.Number("250000"),
		"priceMax": int(750000),
		"sqftMin":  " 1200 ",
	})

	require.NotNil(t, crit.Price.Min)
	assert.Equal(t, float64(250000), *crit.Price.Min)
	require.NotNil(t, crit.Price.Max)
	assert.Equal(t, float64(750000), *crit.Price.Max)
	require.NotNil(t, crit.Sqft.Min)
	assert.Equal(t, float64(1200), *crit.Sqft.Min)
}

func TestNormalize_BoolCoercion(t *testing.T) {
	crit := Normalize(map[string]any{
		"hasNoMin": "true",
		"hasNoMax": false,
	})

	assert.True(t, crit.Price.NoMin)
	assert.False(t, crit.Price.NoMax)
}

func TestNormalize_KeywordModeDefaultsToAny(t *testing.T) {
	crit := Normalize(map[string]any{"keywords": "pool, garage"})

	assert.Equal(t, KeywordModeAny, crit.Keywords.Mode)
	assert.Equal(t, "pool, garage", crit.Keywords.Include)

	crit = Normalize(map[string]any{
		"keywordsInclude": "pool",
		"keywordMode":     "ALL",
	})
	assert.Equal(t, KeywordModeAll, crit.Keywords.Mode)
}

func TestNormalize_SortAndLimit(t *testing.T) {
	crit := Normalize(map[string]any{
		"sortColumn":    "price",
		"sortDirection": "ASC",
		"limit":         float64(50),
	})

	assert.Equal(t, "price", crit.SortColumn)
	assert.Equal(t, "asc", crit.SortDirection)
	assert.Equal(t, 50, crit.Limit)
}

func TestNormalize_InvalidSortDirectionIgnored(t *testing.T) {
	crit := Normalize(map[string]any{"sortDirection": "sideways"})

	assert.Equal(t, "desc", crit.SortDirection)
}

func TestNormalize_RoundTripIsIdempotent(t *testing.T) {
	docs := []map[string]any{
		{},
		{"state": "MA", "selected_towns": []any{"Boston-Back Bay", "Cambridge"}},
		{"min_price": float64(100000), "hasNoMax": true, "propertyTypes": []any{"condo"}},
		{"keywords": "pool,deck", "keyword_mode": "all", "zip": "02139"},
		{"bedsMin": float64(2), "bathsMax": "2.5", "sort": "price", "dir": "asc", "limit": float64(25)},
	}

	for _, doc := range docs {
		once := Normalize(doc)
		twice := Normalize(once.Document())
		assert.Equal(t, once, twice)
	}
}

func TestValidate_InvertedPriceRejected(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": float64(500000),
		"priceMax": float64(100000),
	})

	assert.Error(t, crit.Validate())
}

func TestValidate_InvertedPriceAllowedWithOverrideFlag(t *testing.T) {
	crit := Normalize(map[string]any{
		"priceMin": float64(500000),
		"priceMax": float64(100000),
		"hasNoMin": true,
	})

	assert.NoError(t, crit.Validate())
}

func TestGeoSelector_String(t *testing.T) {
	assert.Equal(t, "Boston", GeoSelector{City: "Boston"}.String())
	assert.Equal(t, "Boston-Back Bay", GeoSelector{City: "Boston", Neighborhood: "Back Bay"}.String())
}
