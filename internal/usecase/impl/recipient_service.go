package impl

import (
	"context"

	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recipientService struct {
	coverageRepo repository.CoverageAreaRepository
}

// RecipientServiceParams holds dependencies for RecipientService, injected by Fx.
type RecipientServiceParams struct {
	fx.In

	CoverageRepo repository.CoverageAreaRepository
}

// NewRecipientService creates a new recipient estimator instance
func NewRecipientService(params RecipientServiceParams) usecase.RecipientUsecase {
	return &recipientService{
		coverageRepo: params.CoverageRepo,
	}
}

// EstimateRecipients counts parties whose coverage area intersects the
// filter's geography. Only the geography portion of the filter participates;
// price and the other dimensions say nothing about who wants to hear about
// the area.
func (s *recipientService) EstimateRecipients(ctx context.Context, filter map[string]any) (int64, error) {
	crit := criteria.Normalize(filter)

	count, err := s.coverageRepo.CountOwnersInGeo(ctx, crit.Geo)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count covered owners")
	}

	return count, nil
}
