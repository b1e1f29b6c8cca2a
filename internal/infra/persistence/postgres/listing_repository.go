package postgres

import (
	"context"

	"hotsheet/internal/domain/entity"
	"hotsheet/internal/domain/query"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// FindListings returns listings matching the predicate, ordered by sort with
// ties broken by ID so repeated evaluations are deterministic.
func (repo *listingRepository) FindListings(ctx context.Context, predicate query.Expr, sort query.Sort, limit int) ([]*entity.Listing, error) {
	tx, err := repo.scope(ctx, predicate)
	if err != nil {
		return nil, err
	}

	tx = tx.Order(orderClause(sort)).Order("id ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var listingModels []*model.ListingModel
	if err := tx.Find(&listingModels).Error; err != nil {
		return nil, classifyStoreError(err, "failed to find listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// CountListings returns the number of matching listings without transferring
// records.
func (repo *listingRepository) CountListings(ctx context.Context, predicate query.Expr) (int64, error) {
	tx, err := repo.scope(ctx, predicate)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, classifyStoreError(err, "failed to count listings")
	}

	return count, nil
}

// scope builds the base query for a predicate. Compilation degrades rather
// than failing, so an unknown field here is a programmer error.
func (repo *listingRepository) scope(ctx context.Context, predicate query.Expr) (*gorm.DB, error) {
	tx := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	condition, args, err := buildPredicate(predicate, listingColumns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build listing predicate")
	}
	if condition != "" {
		tx = tx.Where(condition, args...)
	}

	return tx, nil
}

func orderClause(sort query.Sort) string {
	column, ok := listingColumns[sort.Column]
	if !ok {
		column = "created_at"
	}

	direction := "ASC"
	if sort.Direction == query.SortDesc {
		direction = "DESC"
	}

	return column + " " + direction
}

func toListingDomain(listingM *model.ListingModel) *entity.Listing {
	return &entity.Listing{
		ID:           listingM.ID,
		Address:      listingM.Address,
		City:         listingM.City,
		Neighborhood: listingM.Neighborhood,
		State:        listingM.State,
		ZipCode:      listingM.ZipCode,
		Price:        listingM.Price,
		Beds:         listingM.Beds,
		Baths:        listingM.Baths,
		Sqft:         listingM.Sqft,
		YearBuilt:    listingM.YearBuilt,
		Parking:      listingM.Parking,
		LotSize:      listingM.LotSize,
		PropertyType: listingM.PropertyType,
		Status:       listingM.Status,
		Description:  listingM.Description,
		CreatedAt:    listingM.CreatedAt,
	}
}
