package memory

import (
	"context"
	"testing"
	"time"

	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListing(city, neighborhood string, price float64, beds float64) *entity.Listing {
	return &entity.Listing{
		ID:           uuid.New(),
		City:         city,
		Neighborhood: neighborhood,
		State:        "MA",
		Price:        price,
		Beds:         beds,
		Status:       "active",
		CreatedAt:    time.Now(),
	}
}

func TestFindListings_NilPredicateMatchesEverything(t *testing.T) {
	repo := NewListingRepository([]*entity.Listing{
		newListing("Boston", "Back Bay", 500000, 2),
		newListing("Cambridge", "", 700000, 3),
	})

	listings, err := repo.FindListings(context.Background(), nil, query.Sort{}, 0)
	require.NoError(t, err)
	assert.Len(t, listings, 2)

	count, err := repo.CountListings(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindListings_GeoUnionWidensMatches(t *testing.T) {
	backBay := newListing("Boston", "Back Bay", 500000, 2)
	southEnd := newListing("Boston", "South End", 600000, 2)
	cambridge := newListing("Cambridge", "", 700000, 3)
	repo := NewListingRepository([]*entity.Listing{backBay, southEnd, cambridge})

	ctx := context.Background()

	// A city-only selector matches every neighborhood of that city.
	cityOnly := criteria.Compile(criteria.Normalize(map[string]any{
		"selectedTowns": []any{"Boston"},
	}))
	count, err := repo.CountListings(ctx, cityOnly)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Adding a neighborhood selector for the same city cannot shrink the set.
	widened := criteria.Compile(criteria.Normalize(map[string]any{
		"selectedTowns": []any{"Boston", "Boston-Back Bay"},
	}))
	widenedCount, err := repo.CountListings(ctx, widened)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, widenedCount, count)

	// A neighborhood-only selector narrows to that neighborhood.
	narrow := criteria.Compile(criteria.Normalize(map[string]any{
		"selectedTowns": []any{"Boston-Back Bay"},
	}))
	listings, err := repo.FindListings(ctx, narrow, query.Sort{}, 0)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, backBay.ID, listings[0].ID)
}

func TestFindListings_PriceOverrideFlagIgnoresRetainedBound(t *testing.T) {
	cheap := newListing("Boston", "", 100000, 1)
	expensive := newListing("Boston", "", 900000, 4)
	repo := NewListingRepository([]*entity.Listing{cheap, expensive})

	ctx := context.Background()

	bounded := criteria.Compile(criteria.Normalize(map[string]any{
		"priceMin": float64(500000),
	}))
	count, err := repo.CountListings(ctx, bounded)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The flag clears the bound even though the number is still present.
	overridden := criteria.Compile(criteria.Normalize(map[string]any{
		"priceMin": float64(500000),
		"hasNoMin": true,
	}))
	count, err = repo.CountListings(ctx, overridden)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindListings_CountAgreesWithFind(t *testing.T) {
	repo := NewListingRepository([]*entity.Listing{
		newListing("Boston", "Back Bay", 500000, 2),
		newListing("Boston", "South End", 600000, 3),
		newListing("Cambridge", "", 700000, 3),
		newListing("Somerville", "Davis", 450000, 2),
	})

	docs := []map[string]any{
		{},
		{"selectedTowns": []any{"Boston"}},
		{"priceMax": float64(600000)},
		{"bedsMin": float64(3), "selectedTowns": []any{"Boston", "Cambridge"}},
	}

	ctx := context.Background()
	for _, doc := range docs {
		predicate := criteria.Compile(criteria.Normalize(doc))
		listings, err := repo.FindListings(ctx, predicate, query.Sort{}, 0)
		require.NoError(t, err)
		count, err := repo.CountListings(ctx, predicate)
		require.NoError(t, err)
		assert.Equal(t, int64(len(listings)), count)
	}
}

func TestFindListings_FullCriteriaSelectsExactListing(t *testing.T) {
	match := &entity.Listing{
		ID:           uuid.New(),
		Address:      "42 Beacon St",
		City:         "Boston",
		Neighborhood: "Back Bay",
		State:        "MA",
		ZipCode:      "02116",
		Price:        750000,
		Beds:         2,
		Baths:        2,
		Sqft:         1100,
		PropertyType: "Condominium",
		Status:       "active",
		Description:  "Sunny condo with pool access and garage parking",
		CreatedAt:    time.Now(),
	}
	wrongTown := &entity.Listing{
		ID:           uuid.New(),
		City:         "Cambridge",
		State:        "MA",
		Price:        750000,
		Beds:         2,
		PropertyType: "Condominium",
		Status:       "active",
		Description:  "Condo with pool",
		CreatedAt:    time.Now(),
	}
	tooExpensive := &entity.Listing{
		ID:           uuid.New(),
		City:         "Boston",
		Neighborhood: "Back Bay",
		State:        "MA",
		Price:        2000000,
		Beds:         2,
		PropertyType: "Condominium",
		Status:       "active",
		Description:  "Penthouse with pool",
		CreatedAt:    time.Now(),
	}
	repo := NewListingRepository([]*entity.Listing{match, wrongTown, tooExpensive})

	predicate := criteria.Compile(criteria.Normalize(map[string]any{
		"state":         "MA",
		"selectedTowns": []any{"Boston-Back Bay"},
		"priceMax":      float64(1000000),
		"propertyTypes": []any{"condo"},
		"keywords":      "pool",
	}))

	listings, err := repo.FindListings(context.Background(), predicate, query.Sort{}, 0)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, match.ID, listings[0].ID)
}

func TestFindListings_EqualityIsCaseSensitive(t *testing.T) {
	boston := newListing("Boston", "", 500000, 2)
	repo := NewListingRepository([]*entity.Listing{boston})

	ctx := context.Background()

	// Eq and In compare exactly, matching the SQL adapter's = and IN.
	count, err := repo.CountListings(ctx, query.Eq{Field: query.FieldCity, Value: "boston"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	count, err = repo.CountListings(ctx, query.In{Field: query.FieldCity, Values: []any{"boston"}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// Like stays case insensitive on both adapters.
	boston.Description = "Heated Pool"
	count, err = repo.CountListings(ctx, query.Like{Field: query.FieldDescription, Value: "pool", Kind: query.MatchContains})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFindListings_KeywordExclude(t *testing.T) {
	withPool := newListing("Boston", "", 500000, 2)
	withPool.Description = "Updated kitchen, heated pool"
	noPool := newListing("Boston", "", 500000, 2)
	noPool.Description = "Updated kitchen"
	repo := NewListingRepository([]*entity.Listing{withPool, noPool})

	predicate := criteria.Compile(criteria.Normalize(map[string]any{
		"keywordsExclude": "pool",
	}))

	listings, err := repo.FindListings(context.Background(), predicate, query.Sort{}, 0)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, noPool.ID, listings[0].ID)
}

func TestFindListings_SortAndLimit(t *testing.T) {
	a := newListing("Boston", "", 300000, 2)
	b := newListing("Boston", "", 100000, 2)
	c := newListing("Boston", "", 200000, 2)
	repo := NewListingRepository([]*entity.Listing{a, b, c})

	listings, err := repo.FindListings(context.Background(), nil,
		query.Sort{Column: query.FieldPrice, Direction: query.SortAsc}, 2)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, b.ID, listings[0].ID)
	assert.Equal(t, c.ID, listings[1].ID)
}

func TestFindListings_TieBreakIsDeterministic(t *testing.T) {
	samePrice := []*entity.Listing{
		newListing("Boston", "", 500000, 2),
		newListing("Boston", "", 500000, 2),
		newListing("Boston", "", 500000, 2),
	}
	repo := NewListingRepository(samePrice)

	sortBy := query.Sort{Column: query.FieldPrice, Direction: query.SortDesc}
	first, err := repo.FindListings(context.Background(), nil, sortBy, 0)
	require.NoError(t, err)
	second, err := repo.FindListings(context.Background(), nil, sortBy, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindListings_UnknownFieldRejected(t *testing.T) {
	repo := NewListingRepository([]*entity.Listing{newListing("Boston", "", 500000, 2)})

	_, err := repo.FindListings(context.Background(), query.Eq{Field: "bogus", Value: 1}, query.Sort{}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUnknownField))
}

func TestFindListings_EmptyInMatchesNothing(t *testing.T) {
	repo := NewListingRepository([]*entity.Listing{newListing("Boston", "", 500000, 2)})

	count, err := repo.CountListings(context.Background(), query.In{Field: query.FieldCity})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
