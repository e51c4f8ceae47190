package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
)

type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	Search(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).First(&dest, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) Search(ctx context.Context, filter request_models.DestinationFilter) ([]db_models.Destination, error) {
	var dests []db_models.Destination

	tx := r.db.WithContext(ctx).Model(&db_models.Destination{})

	if filter.Category != "" && filter.Category != "all" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.SearchText != "" {
		pattern := "%" + filter.SearchText + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	err := tx.Order("name").Find(&dests).Error
	if err != nil {
		return nil, err
	}
	return dests, nil
}
