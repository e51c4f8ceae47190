package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"konkanbliss/internal/models/db_models"
	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, packageID, accountID string, req request_models.AddReviewRequest) error
	ListByPackage(ctx context.Context, packageID string) ([]db_models.PackageReview, error)
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	packageRepo repositories.PackageRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, packageRepo repositories.PackageRepository) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		packageRepo: packageRepo,
	}
}

func (s *ReviewService) AddReview(ctx context.Context, packageID, accountID string, req request_models.AddReviewRequest) error {
	pkgID, err := uuid.Parse(packageID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	acctID, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	pkg, err := s.packageRepo.GetByIDWithDestinations(ctx, packageID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if pkg == nil {
		return utils.ErrPackageNotFound
	}

	review := &db_models.PackageReview{
		PackageID:  pkgID,
		AccountID:  acctID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		TravelDate: req.TravelDate,
	}

	if _, err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Printf("Error creating review: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) ListByPackage(ctx context.Context, packageID string) ([]db_models.PackageReview, error) {
	reviews, err := s.reviewRepo.ListByPackage(ctx, packageID)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return reviews, nil
}
