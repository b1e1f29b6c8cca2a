package impl

import (
	"context"
	"testing"

	"hotsheet/config"
	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	mockRepo "hotsheet/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func searchTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			MaxResults:           500,
			DefaultSortColumn:    "created_at",
			DefaultSortDirection: "desc",
		},
	}
}

func TestSearchService_Search(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	ctx := context.Background()
	expected := []*entity.Listing{{ID: uuid.New(), City: "Boston"}}

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, query.Sort{Column: "created_at", Direction: query.SortDesc}, 500).
		Return(expected, nil)

	listings, err := service.Search(ctx, map[string]any{"selectedTowns": []any{"Boston"}})
	require.NoError(t, err)
	assert.Equal(t, expected, listings)
}

func TestSearchService_Search_CallerLimitBelowCap(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	ctx := context.Background()

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 25).
		Return(nil, nil)

	_, err := service.Search(ctx, map[string]any{"limit": float64(25)})
	require.NoError(t, err)
}

func TestSearchService_Search_CallerLimitClampedToCap(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	ctx := context.Background()

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 500).
		Return(nil, nil)

	_, err := service.Search(ctx, map[string]any{"limit": float64(10000)})
	require.NoError(t, err)
}

func TestSearchService_Search_InvalidCriteriaRejected(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	_, err := service.Search(context.Background(), map[string]any{
		"priceMin": float64(900000),
		"priceMax": float64(100000),
	})
	require.Error(t, err)
	mockListingRepo.AssertNotCalled(t, "FindListings")
}

func TestSearchService_CountMatches(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	ctx := context.Background()

	mockListingRepo.EXPECT().
		CountListings(ctx, mock.Anything).
		Return(int64(42), nil)

	count, err := service.CountMatches(ctx, map[string]any{"selectedTowns": []any{"Boston"}})
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestSearchService_CountMatches_RepoError(t *testing.T) {
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	service := NewSearchService(SearchServiceParams{
		ListingRepo: mockListingRepo,
		Config:      searchTestConfig(),
	})

	ctx := context.Background()

	mockListingRepo.EXPECT().
		CountListings(ctx, mock.Anything).
		Return(int64(0), errors.New("connection refused"))

	_, err := service.CountMatches(ctx, nil)
	require.Error(t, err)
}
