package services

import (
	"context"
	"math"

	"konkanbliss/internal/models/response_models"
	"konkanbliss/internal/repositories"
	"konkanbliss/pkg/utils"
)

type StatsServiceInterface interface {
	BuildStats(ctx context.Context) (*response_models.PackageStats, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) BuildStats(ctx context.Context) (*response_models.PackageStats, error) {
	totalPackages, err := s.statsRepo.CountPackages(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalBookings, err := s.statsRepo.CountBookings(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	totalReviews, err := s.statsRepo.CountReviews(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var avgRating float64
	if totalReviews > 0 {
		ratingSum, err := s.statsRepo.SumRatings(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		// One decimal place, matching the marketing dashboard rendering.
		avgRating = math.Round(float64(ratingSum)/float64(totalReviews)*10) / 10
	}

	revenue, err := s.statsRepo.SumBookingRevenue(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows, err := s.statsRepo.PackagesByCategory(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	breakdown := make(map[string]int64, len(rows))
	for _, row := range rows {
		breakdown[row.Category] = row.Count
	}

	return &response_models.PackageStats{
		TotalPackages:     totalPackages,
		TotalBookings:     totalBookings,
		TotalReviews:      totalReviews,
		AverageRating:     avgRating,
		TotalRevenue:      revenue,
		CategoryBreakdown: breakdown,
	}, nil
}
