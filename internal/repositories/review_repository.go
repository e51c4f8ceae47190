package repositories

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konkanbliss/internal/models/db_models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.PackageReview) (uuid.UUID, error)
	ListByPackage(ctx context.Context, packageID string) ([]db_models.PackageReview, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.PackageReview) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return uuid.Nil, err
	}
	return review.ID, nil
}

func (r *reviewRepository) ListByPackage(ctx context.Context, packageID string) ([]db_models.PackageReview, error) {
	var reviews []db_models.PackageReview
	err := r.db.WithContext(ctx).
		Where("package_id = ?", packageID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
