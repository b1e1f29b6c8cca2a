package postgres

import (
	"context"
	"encoding/json"
	"time"

	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// hotsheetRepository implements the repository.HotsheetRepository interface.
type hotsheetRepository struct {
	db *gorm.DB
}

// NewHotsheetRepository is the constructor for hotsheetRepository.
func NewHotsheetRepository(db *gorm.DB) repository.HotsheetRepository {
	return &hotsheetRepository{
		db: db,
	}
}

// CreateHotsheet persists a new hotsheet with its frozen criteria snapshot.
func (repo *hotsheetRepository) CreateHotsheet(ctx context.Context, hotsheet *entity.Hotsheet) error {
	hotsheetM, err := fromHotsheetDomain(hotsheet)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(hotsheetM).Error; err != nil {
		return classifyStoreError(err, "failed to create hotsheet")
	}

	// Update the entity with generated values
	hotsheet.ID = hotsheetM.ID
	hotsheet.CreatedAt = hotsheetM.CreatedAt
	hotsheet.UpdatedAt = hotsheetM.UpdatedAt

	return nil
}

// FindHotsheetByID retrieves a hotsheet by its unique ID.
func (repo *hotsheetRepository) FindHotsheetByID(ctx context.Context, id uuid.UUID) (*entity.Hotsheet, error) {
	var hotsheetM model.HotsheetModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&hotsheetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotsheetNotFound
		}

		return nil, classifyStoreError(err, "failed to find hotsheet by ID")
	}

	return toHotsheetDomain(&hotsheetM), nil
}

// FindHotsheetsByOwner retrieves all hotsheets owned by an agent (excluding soft-deleted).
func (repo *hotsheetRepository) FindHotsheetsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotsheet, error) {
	var hotsheetModels []*model.HotsheetModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&hotsheetModels).Error; err != nil {
		return nil, classifyStoreError(err, "failed to find hotsheets by owner")
	}

	hotsheets := make([]*entity.Hotsheet, 0, len(hotsheetModels))
	for _, hotsheetM := range hotsheetModels {
		hotsheets = append(hotsheets, toHotsheetDomain(hotsheetM))
	}

	return hotsheets, nil
}

// ReplaceCriteria atomically replaces the whole criteria snapshot when the
// expected version still matches, bumping the version in the same statement.
func (repo *hotsheetRepository) ReplaceCriteria(ctx context.Context, id uuid.UUID, criteria map[string]any, expectedVersion int64) error {
	criteriaJSON, err := marshalCriteria(criteria)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.HotsheetModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"criteria": criteriaJSON,
			"version":  gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return classifyStoreError(result.Error, "failed to replace hotsheet criteria")
	}

	if result.RowsAffected == 0 {
		// Distinguish a stale version from a missing hotsheet.
		if _, err := repo.FindHotsheetByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrVersionConflict
	}

	return nil
}

// UpdateHotsheetStatus updates the active flag of a hotsheet.
func (repo *hotsheetRepository) UpdateHotsheetStatus(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HotsheetModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return classifyStoreError(result.Error, "failed to update hotsheet status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHotsheetNotFound
	}

	return nil
}

// MarkDelivered unions the listing IDs into the delivered set in one UPDATE.
// Two concurrent deliveries both land; neither can drop the other's ids.
func (repo *hotsheetRepository) MarkDelivered(ctx context.Context, id uuid.UUID, listingIDs []string) error {
	if len(listingIDs) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).Exec(`
		UPDATE hotsheets
		SET delivered_listing_ids = (
			SELECT COALESCE(array_agg(DISTINCT listing_id), '{}')
			FROM unnest(delivered_listing_ids || ?::text[]) AS t(listing_id)
		),
		updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		pq.StringArray(listingIDs), time.Now(), id)

	if result.Error != nil {
		return classifyStoreError(result.Error, "failed to mark listings delivered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHotsheetNotFound
	}

	return nil
}

// DeleteHotsheet removes a hotsheet by its ID (soft delete).
func (repo *hotsheetRepository) DeleteHotsheet(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.HotsheetModel{})

	if result.Error != nil {
		return classifyStoreError(result.Error, "failed to delete hotsheet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHotsheetNotFound
	}

	return nil
}

func fromHotsheetDomain(hotsheet *entity.Hotsheet) (*model.HotsheetModel, error) {
	criteriaJSON, err := marshalCriteria(hotsheet.Criteria)
	if err != nil {
		return nil, err
	}

	return &model.HotsheetModel{
		ID:                  hotsheet.ID,
		OwnerID:             hotsheet.OwnerID,
		Name:                hotsheet.Name,
		Criteria:            criteriaJSON,
		DeliveredListingIDs: pq.StringArray(hotsheet.Delivered),
		IsActive:            hotsheet.IsActive,
		Version:             hotsheet.Version,
		CreatedAt:           hotsheet.CreatedAt,
		UpdatedAt:           hotsheet.UpdatedAt,
	}, nil
}

func toHotsheetDomain(hotsheetM *model.HotsheetModel) *entity.Hotsheet {
	// Schema-on-read: a snapshot that fails to decode behaves as an empty
	// document rather than erroring the whole hotsheet.
	var criteria map[string]any
	if len(hotsheetM.Criteria) > 0 {
		_ = json.Unmarshal(hotsheetM.Criteria, &criteria)
	}

	return &entity.Hotsheet{
		ID:        hotsheetM.ID,
		OwnerID:   hotsheetM.OwnerID,
		Name:      hotsheetM.Name,
		Criteria:  criteria,
		Delivered: []string(hotsheetM.DeliveredListingIDs),
		IsActive:  hotsheetM.IsActive,
		Version:   hotsheetM.Version,
		CreatedAt: hotsheetM.CreatedAt,
		UpdatedAt: hotsheetM.UpdatedAt,
	}
}

func marshalCriteria(criteria map[string]any) (datatypes.JSON, error) {
	if criteria == nil {
		criteria = map[string]any{}
	}

	criteriaJSON, err := json.Marshal(criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal criteria snapshot")
	}

	return datatypes.JSON(criteriaJSON), nil
}
