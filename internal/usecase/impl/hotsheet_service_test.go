package impl

import (
	"context"
	"testing"

	"hotsheet/internal/domain/entity"
	domainerrors "hotsheet/internal/domain/errors"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/domain/service"
	mockRepo "hotsheet/internal/mocks/repository"
	mockSvc "hotsheet/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHotsheetService(t *testing.T) (*mockRepo.MockHotsheetRepository, *mockRepo.MockListingRepository, *mockSvc.MockDeliveryDispatcher, *hotsheetService) {
	mockHotsheetRepo := mockRepo.NewMockHotsheetRepository(t)
	mockListingRepo := mockRepo.NewMockListingRepository(t)
	mockDispatcher := mockSvc.NewMockDeliveryDispatcher(t)

	svc := NewHotsheetService(HotsheetServiceParams{
		HotsheetRepo: mockHotsheetRepo,
		ListingRepo:  mockListingRepo,
		Dispatcher:   mockDispatcher,
		Config:       searchTestConfig(),
	})

	return mockHotsheetRepo, mockListingRepo, mockDispatcher, svc.(*hotsheetService)
}

func TestHotsheetService_CreateHotsheet_StoresNormalizedSnapshot(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	mockHotsheetRepo.EXPECT().
		CreateHotsheet(ctx, mock.AnythingOfType("*entity.Hotsheet")).
		Return(nil)

	hotsheet, err := svc.CreateHotsheet(ctx, ownerID, "Back Bay condos", map[string]any{
		"towns":     []any{"Boston-Back Bay"},
		"max_price": float64(900000),
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, hotsheet.OwnerID)
	assert.Equal(t, int64(1), hotsheet.Version)
	assert.True(t, hotsheet.IsActive)

	// The snapshot holds canonical keys, not the legacy aliases.
	assert.Equal(t, []string{"Boston-Back Bay"}, hotsheet.Criteria["selectedTowns"])
	assert.Equal(t, float64(900000), hotsheet.Criteria["priceMax"])
	assert.NotContains(t, hotsheet.Criteria, "max_price")
}

func TestHotsheetService_CreateHotsheet_InvalidCriteria(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	_, err := svc.CreateHotsheet(context.Background(), uuid.New(), "bad", map[string]any{
		"priceMin": float64(500000),
		"priceMax": float64(100000),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CRITERIA_INVALID", appErr.ErrorCode())
	mockHotsheetRepo.AssertNotCalled(t, "CreateHotsheet")
}

func TestHotsheetService_GetHotsheet_OwnershipEnforced(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{ID: hotsheetID, OwnerID: uuid.New()}, nil)

	_, err := svc.GetHotsheet(ctx, uuid.New(), hotsheetID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHotsheetOwnership))
}

func TestHotsheetService_GetHotsheet_NotFound(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(nil, repository.ErrHotsheetNotFound)

	_, err := svc.GetHotsheet(ctx, uuid.New(), hotsheetID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHotsheetNotFound))
}

func TestHotsheetService_EditCriteria_VersionConflict(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{ID: hotsheetID, OwnerID: ownerID, Version: 3}, nil)

	mockHotsheetRepo.EXPECT().
		ReplaceCriteria(ctx, hotsheetID, mock.Anything, int64(2)).
		Return(repository.ErrVersionConflict)

	_, err := svc.EditCriteria(ctx, ownerID, hotsheetID, 2, map[string]any{"state": "MA"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrHotsheetConflict))
}

func TestHotsheetService_EditCriteria_ReplacesWholeSnapshot(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	stored := &entity.Hotsheet{
		ID:      hotsheetID,
		OwnerID: ownerID,
		Version: 1,
		Criteria: map[string]any{
			"selectedTowns": []any{"Boston"},
			"priceMax":      float64(500000),
		},
	}
	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(stored, nil)

	// The new document contains only a state filter; the old price bound must
	// not survive the replacement.
	mockHotsheetRepo.EXPECT().
		ReplaceCriteria(ctx, hotsheetID, mock.MatchedBy(func(doc map[string]any) bool {
			_, hasPrice := doc["priceMax"]

			return doc["state"] == "MA" && !hasPrice
		}), int64(1)).
		Return(nil)

	_, err := svc.EditCriteria(ctx, ownerID, hotsheetID, 1, map[string]any{"state": "MA"})
	require.NoError(t, err)
}

func TestHotsheetService_NewSinceLastDelivery_ExcludesDelivered(t *testing.T) {
	mockHotsheetRepo, mockListingRepo, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	delivered := uuid.New()
	fresh := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{
			ID:        hotsheetID,
			OwnerID:   ownerID,
			Criteria:  map[string]any{"state": "MA"},
			Delivered: []string{delivered.String()},
		}, nil)

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 500).
		Return([]*entity.Listing{{ID: delivered}, {ID: fresh}}, nil)

	listings, err := svc.NewSinceLastDelivery(ctx, ownerID, hotsheetID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, fresh, listings[0].ID)
}

func TestHotsheetService_DeliverNew_DispatchesThenMarks(t *testing.T) {
	mockHotsheetRepo, mockListingRepo, mockDispatcher, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()
	listingID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{
			ID:       hotsheetID,
			OwnerID:  ownerID,
			Name:     "Back Bay condos",
			Criteria: map[string]any{"state": "MA"},
			IsActive: true,
		}, nil)

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 500).
		Return([]*entity.Listing{{ID: listingID}}, nil)

	mockDispatcher.EXPECT().
		DispatchHotsheet(ctx, mock.MatchedBy(func(event *service.HotsheetDeliveryEvent) bool {
			return event.HotsheetID == hotsheetID.String() &&
				len(event.ListingIDs) == 1 &&
				event.ListingIDs[0] == listingID.String()
		})).
		Return(nil)

	mockHotsheetRepo.EXPECT().
		MarkDelivered(ctx, hotsheetID, []string{listingID.String()}).
		Return(nil)

	report, err := svc.DeliverNew(ctx, ownerID, hotsheetID)
	require.NoError(t, err)
	assert.True(t, report.Dispatched)
	assert.Equal(t, []string{listingID.String()}, report.ListingIDs)
}

func TestHotsheetService_DeliverNew_NothingNew(t *testing.T) {
	mockHotsheetRepo, mockListingRepo, mockDispatcher, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()
	listingID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{
			ID:        hotsheetID,
			OwnerID:   ownerID,
			Criteria:  map[string]any{"state": "MA"},
			Delivered: []string{listingID.String()},
			IsActive:  true,
		}, nil)

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 500).
		Return([]*entity.Listing{{ID: listingID}}, nil)

	report, err := svc.DeliverNew(ctx, ownerID, hotsheetID)
	require.NoError(t, err)
	assert.False(t, report.Dispatched)
	assert.Empty(t, report.ListingIDs)
	mockDispatcher.AssertNotCalled(t, "DispatchHotsheet")
	mockHotsheetRepo.AssertNotCalled(t, "MarkDelivered")
}

func TestHotsheetService_DeliverNew_DispatchFailureLeavesDeliveredUntouched(t *testing.T) {
	mockHotsheetRepo, mockListingRepo, mockDispatcher, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{
			ID:       hotsheetID,
			OwnerID:  ownerID,
			Criteria: map[string]any{"state": "MA"},
			IsActive: true,
		}, nil)

	mockListingRepo.EXPECT().
		FindListings(ctx, mock.Anything, mock.Anything, 500).
		Return([]*entity.Listing{{ID: uuid.New()}}, nil)

	mockDispatcher.EXPECT().
		DispatchHotsheet(ctx, mock.Anything).
		Return(errors.New("worker returned non-success status: 502"))

	_, err := svc.DeliverNew(ctx, ownerID, hotsheetID)
	require.Error(t, err)
	mockHotsheetRepo.AssertNotCalled(t, "MarkDelivered")
}

func TestHotsheetService_DeliverNew_SkipsPausedHotsheet(t *testing.T) {
	mockHotsheetRepo, mockListingRepo, mockDispatcher, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{
			ID:       hotsheetID,
			OwnerID:  ownerID,
			Criteria: map[string]any{"state": "MA"},
			IsActive: false,
		}, nil)

	report, err := svc.DeliverNew(ctx, ownerID, hotsheetID)
	require.NoError(t, err)
	assert.False(t, report.Dispatched)
	assert.Empty(t, report.ListingIDs)
	mockListingRepo.AssertNotCalled(t, "FindListings")
	mockDispatcher.AssertNotCalled(t, "DispatchHotsheet")
	mockHotsheetRepo.AssertNotCalled(t, "MarkDelivered")
}

func TestHotsheetService_SetActive(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{ID: hotsheetID, OwnerID: ownerID, IsActive: true}, nil)

	mockHotsheetRepo.EXPECT().
		UpdateHotsheetStatus(ctx, hotsheetID, false).
		Return(nil)

	require.NoError(t, svc.SetActive(ctx, ownerID, hotsheetID, false))
}

func TestHotsheetService_DeleteHotsheet(t *testing.T) {
	mockHotsheetRepo, _, _, svc := newHotsheetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	hotsheetID := uuid.New()

	mockHotsheetRepo.EXPECT().
		FindHotsheetByID(ctx, hotsheetID).
		Return(&entity.Hotsheet{ID: hotsheetID, OwnerID: ownerID}, nil)

	mockHotsheetRepo.EXPECT().
		DeleteHotsheet(ctx, hotsheetID).
		Return(nil)

	require.NoError(t, svc.DeleteHotsheet(ctx, ownerID, hotsheetID))
}
