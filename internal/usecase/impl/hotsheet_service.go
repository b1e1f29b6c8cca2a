package impl

import (
	"context"
	"time"

	"hotsheet/config"
	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/entity"
	domainerrors "hotsheet/internal/domain/errors"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/domain/service"
	"hotsheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type hotsheetService struct {
	hotsheetRepo repository.HotsheetRepository
	listingRepo  repository.ListingRepository
	dispatcher   service.DeliveryDispatcher
	config       *config.Config
}

// HotsheetServiceParams holds dependencies for HotsheetService, injected by Fx.
type HotsheetServiceParams struct {
	fx.In

	HotsheetRepo repository.HotsheetRepository
	ListingRepo  repository.ListingRepository
	Dispatcher   service.DeliveryDispatcher
	Config       *config.Config
}

// NewHotsheetService creates a new hotsheet service instance
func NewHotsheetService(params HotsheetServiceParams) usecase.HotsheetUsecase {
	return &hotsheetService{
		hotsheetRepo: params.HotsheetRepo,
		listingRepo:  params.ListingRepo,
		dispatcher:   params.Dispatcher,
		config:       params.Config,
	}
}

// CreateHotsheet validates the filter and stores a frozen snapshot of it.
// The snapshot is the normalized canonical document, not the raw UI state, so
// later re-normalization is a no-op.
func (s *hotsheetService) CreateHotsheet(ctx context.Context, ownerID uuid.UUID, name string, filter map[string]any) (*entity.Hotsheet, error) {
	crit := criteria.Normalize(filter)
	if err := crit.Validate(); err != nil {
		return nil, err
	}

	hotsheet := &entity.Hotsheet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Criteria:  crit.Document(),
		IsActive:  true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.hotsheetRepo.CreateHotsheet(ctx, hotsheet); err != nil {
		return nil, errors.Wrap(err, "failed to create hotsheet")
	}

	return hotsheet, nil
}

// GetHotsheet retrieves one hotsheet owned by the agent.
func (s *hotsheetService) GetHotsheet(ctx context.Context, ownerID, id uuid.UUID) (*entity.Hotsheet, error) {
	return s.ownedHotsheet(ctx, ownerID, id)
}

// ListHotsheets retrieves all hotsheets owned by the agent.
func (s *hotsheetService) ListHotsheets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotsheet, error) {
	hotsheets, err := s.hotsheetRepo.FindHotsheetsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hotsheets")
	}

	return hotsheets, nil
}

// EditCriteria replaces the whole snapshot atomically. Concurrent edits are
// rejected by the optimistic version check rather than silently last-write-wins.
func (s *hotsheetService) EditCriteria(ctx context.Context, ownerID, id uuid.UUID, version int64, filter map[string]any) (*entity.Hotsheet, error) {
	if _, err := s.ownedHotsheet(ctx, ownerID, id); err != nil {
		return nil, err
	}

	crit := criteria.Normalize(filter)
	if err := crit.Validate(); err != nil {
		return nil, err
	}

	if err := s.hotsheetRepo.ReplaceCriteria(ctx, id, crit.Document(), version); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, domainerrors.ErrHotsheetConflict
		}

		return nil, errors.Wrap(err, "failed to replace hotsheet criteria")
	}

	return s.ownedHotsheet(ctx, ownerID, id)
}

// SetActive pauses or resumes a hotsheet.
func (s *hotsheetService) SetActive(ctx context.Context, ownerID, id uuid.UUID, isActive bool) error {
	if _, err := s.ownedHotsheet(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.hotsheetRepo.UpdateHotsheetStatus(ctx, id, isActive); err != nil {
		return errors.Wrap(err, "failed to update hotsheet status")
	}

	return nil
}

// DeleteHotsheet removes a hotsheet.
func (s *hotsheetService) DeleteHotsheet(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.ownedHotsheet(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.hotsheetRepo.DeleteHotsheet(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete hotsheet")
	}

	return nil
}

// CurrentMatches re-compiles the stored snapshot and evaluates it against the
// live inventory.
func (s *hotsheetService) CurrentMatches(ctx context.Context, ownerID, id uuid.UUID) ([]*entity.Listing, error) {
	hotsheet, err := s.ownedHotsheet(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	return s.evaluate(ctx, hotsheet)
}

// NewSinceLastDelivery returns current matches minus delivered listing IDs.
func (s *hotsheetService) NewSinceLastDelivery(ctx context.Context, ownerID, id uuid.UUID) ([]*entity.Listing, error) {
	hotsheet, err := s.ownedHotsheet(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	matches, err := s.evaluate(ctx, hotsheet)
	if err != nil {
		return nil, err
	}

	return undelivered(matches, hotsheet.Delivered), nil
}

// DeliverNew selects the undelivered matches, dispatches them and records
// them as delivered. Paused hotsheets are skipped without evaluation.
// MarkDelivered runs only after a successful dispatch, so a dispatch failure
// leaves the listings eligible for the next attempt.
func (s *hotsheetService) DeliverNew(ctx context.Context, ownerID, id uuid.UUID) (*usecase.DeliveryReport, error) {
	hotsheet, err := s.ownedHotsheet(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if !hotsheet.IsActive {
		return &usecase.DeliveryReport{HotsheetID: id}, nil
	}

	matches, err := s.evaluate(ctx, hotsheet)
	if err != nil {
		return nil, err
	}

	fresh := undelivered(matches, hotsheet.Delivered)
	if len(fresh) == 0 {
		return &usecase.DeliveryReport{HotsheetID: id}, nil
	}

	listingIDs := make([]string, 0, len(fresh))
	for _, listing := range fresh {
		listingIDs = append(listingIDs, listing.ID.String())
	}

	event := &service.HotsheetDeliveryEvent{
		RequestID:  uuid.NewString(),
		HotsheetID: id.String(),
		OwnerID:    ownerID.String(),
		Name:       hotsheet.Name,
		ListingIDs: listingIDs,
	}
	if err := s.dispatcher.DispatchHotsheet(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to dispatch hotsheet delivery")
	}

	if err := s.hotsheetRepo.MarkDelivered(ctx, id, listingIDs); err != nil {
		return nil, errors.Wrap(err, "failed to mark listings delivered")
	}

	return &usecase.DeliveryReport{
		HotsheetID: id,
		ListingIDs: listingIDs,
		Dispatched: true,
	}, nil
}

func (s *hotsheetService) ownedHotsheet(ctx context.Context, ownerID, id uuid.UUID) (*entity.Hotsheet, error) {
	hotsheet, err := s.hotsheetRepo.FindHotsheetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHotsheetNotFound) {
			return nil, domainerrors.ErrHotsheetNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotsheet")
	}

	if hotsheet.OwnerID != ownerID {
		return nil, domainerrors.ErrHotsheetOwnership
	}

	return hotsheet, nil
}

func (s *hotsheetService) evaluate(ctx context.Context, hotsheet *entity.Hotsheet) ([]*entity.Listing, error) {
	crit := criteria.Normalize(hotsheet.Criteria)
	if err := crit.Validate(); err != nil {
		return nil, err
	}

	listings, err := s.listingRepo.FindListings(ctx, criteria.Compile(crit), crit.Sort(), s.config.Search.MaxResults)
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate hotsheet criteria")
	}

	return listings, nil
}

func undelivered(matches []*entity.Listing, delivered []string) []*entity.Listing {
	seen := make(map[string]struct{}, len(delivered))
	for _, id := range delivered {
		seen[id] = struct{}{}
	}

	fresh := make([]*entity.Listing, 0, len(matches))
	for _, listing := range matches {
		if _, ok := seen[listing.ID.String()]; !ok {
			fresh = append(fresh, listing)
		}
	}

	return fresh
}
