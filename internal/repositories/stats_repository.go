package repositories

import (
	"context"
	"gorm.io/gorm"

	"konkanbliss/internal/models/db_models"
)

type StatsRepository interface {
	CountPackages(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	SumRatings(ctx context.Context) (int64, error)
	SumBookingRevenue(ctx context.Context) (float64, error)
	PackagesByCategory(ctx context.Context) ([]CategoryCount, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

type CategoryCount struct {
	Category string `gorm:"column:category"`
	Count    int64  `gorm:"column:count"`
}

func (r *statsRepository) CountPackages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Package{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountBookings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.PackageBooking{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountReviews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.PackageReview{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) SumRatings(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PackageReview{}).
		Select("COALESCE(SUM(rating), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) SumBookingRevenue(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&db_models.PackageBooking{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) PackagesByCategory(ctx context.Context) ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.WithContext(ctx).
		Table("packages").
		Select("category, COUNT(*) AS count").
		Where("deleted_at IS NULL").
		Group("category").
		Order("count DESC").
		Find(&rows).Error
	return rows, err
}
