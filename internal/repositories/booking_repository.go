package repositories

import (
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"konkanbliss/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.PackageBooking) (uuid.UUID, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.PackageBooking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.PackageBooking) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(booking).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.PackageBooking, error) {
	var bookings []db_models.PackageBooking
	err := r.db.WithContext(ctx).
		Preload("Package").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
