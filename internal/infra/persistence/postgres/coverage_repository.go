package postgres

import (
	"context"

	"hotsheet/internal/domain/criteria"
	"hotsheet/internal/domain/repository"
	"hotsheet/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// coverageAreaRepository implements the repository.CoverageAreaRepository interface.
type coverageAreaRepository struct {
	db *gorm.DB
}

// NewCoverageAreaRepository is the constructor for coverageAreaRepository.
func NewCoverageAreaRepository(db *gorm.DB) repository.CoverageAreaRepository {
	return &coverageAreaRepository{
		db: db,
	}
}

// CountOwnersInGeo counts distinct parties whose declared coverage intersects
// the requested geography. A coverage row with an empty city covers its whole
// state/county; a row with an empty neighborhood covers its whole city.
// Without city selectors the estimate falls back to state/county coverage.
func (repo *coverageAreaRepository) CountOwnersInGeo(ctx context.Context, geo criteria.Geo) (int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CoverageAreaModel{})

	if geo.State != "" {
		tx = tx.Where("state = ?", geo.State)
	}

	if len(geo.Selectors) == 0 {
		if geo.County != "" {
			// Whole-state coverage rows intersect every county request.
			tx = tx.Where("county = ? OR county = ''", geo.County)
		}
	} else {
		tx = tx.Where(repo.selectorCondition(geo.Selectors))
	}

	var count int64
	if err := tx.Distinct("owner_id").Count(&count).Error; err != nil {
		return 0, classifyStoreError(err, "failed to count covered owners")
	}

	return count, nil
}

func (repo *coverageAreaRepository) selectorCondition(selectors []criteria.GeoSelector) *gorm.DB {
	// State- and county-wide coverage intersects any city request.
	condition := repo.db.Where("city = ''")

	var cityOnly []string
	for _, sel := range selectors {
		if sel.City == "" {
			continue
		}
		if sel.Neighborhood == "" {
			cityOnly = append(cityOnly, sel.City)

			continue
		}
		// Whole-city coverage intersects a neighborhood request.
		condition = condition.Or("city = ? AND (neighborhood = ? OR neighborhood = '')",
			sel.City, sel.Neighborhood)
	}

	if len(cityOnly) > 0 {
		condition = condition.Or("city IN ?", cityOnly)
	}

	return condition
}
