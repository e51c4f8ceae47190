package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error)

	GetByIDWithDestinations(ctx context.Context, id string) (*db_models.Package, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Package, error)
	Search(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *db_models.Package) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return uuid.Nil, err
	}
	return pkg.ID, nil
}

// Read helpers return a default value + nil error when no rows are found.

func (r *packageRepository) GetByIDWithDestinations(ctx context.Context, id string) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).
		Preload("Destinations").
		First(&pkg, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Package, error) {
	var pkgs []db_models.Package
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Preload("Destinations").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&pkgs).Error

	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

// Search pushes the browse filters into SQL. The same predicates exist as a
// pure in-memory filter in the services package for the fallback catalog.
func (r *packageRepository) Search(ctx context.Context, filter request_models.PackageFilter, page, pageSize int) ([]db_models.Package, error) {
	var pkgs []db_models.Package
	offset := (page - 1) * pageSize

	tx := r.db.WithContext(ctx).Model(&db_models.Package{})

	if filter.Category != "" && filter.Category != "all" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.SearchText != "" {
		pattern := "%" + filter.SearchText + "%"
		tx = tx.Where(
			"title ILIKE ? OR description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(highlights) h WHERE h ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.PriceMin > 0 {
		tx = tx.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax > 0 {
		tx = tx.Where("price <= ?", filter.PriceMax)
	}

	err := tx.
		Preload("Destinations").
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}
