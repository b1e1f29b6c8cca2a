// Package impl contains the use case implementations.
package impl

import (
	"context"

	"hotsheet/config"
	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type searchService struct {
	listingRepo repository.ListingRepository
	config      *config.Config
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Config      *config.Config
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		listingRepo: params.ListingRepo,
		config:      params.Config,
	}
}

// Search normalizes, validates and compiles the raw filter, then evaluates it
// against the live inventory with the configured result cap.
func (s *searchService) Search(ctx context.Context, filter map[string]any) ([]*entity.Listing, error) {
	crit := criteria.Normalize(filter)
	if err := crit.Validate(); err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindListings(ctx, criteria.Compile(crit), s.sortFor(crit), s.limitFor(crit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return listings, nil
}

// CountMatches evaluates the filter in count mode.
func (s *searchService) CountMatches(ctx context.Context, filter map[string]any) (int64, error) {
	crit := criteria.Normalize(filter)
	if err := crit.Validate(); err != nil {
		return 0, err
	}

	count, err := s.listingRepo.CountListings(ctx, criteria.Compile(crit))
	if err != nil {
		return 0, errors.Wrap(err, "failed to count listings")
	}

	return count, nil
}

// limitFor clamps the caller's limit to the configured hard maximum. The cap
// always applies; a broad predicate never transfers the whole inventory.
func (s *searchService) limitFor(crit criteria.Criteria) int {
	maxResults := s.config.Search.MaxResults
	if crit.Limit > 0 && crit.Limit < maxResults {
		return crit.Limit
	}

	return maxResults
}

func (s *searchService) sortFor(crit criteria.Criteria) query.Sort {
	sort := crit.Sort()
	if sort.Column == "" {
		sort.Column = s.config.Search.DefaultSortColumn
		if s.config.Search.DefaultSortDirection == "asc" {
			sort.Direction = query.SortAsc
		} else {
			sort.Direction = query.SortDesc
		}
	}

	return sort
}
