package bookingfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"konkanbliss/internal/repositories"
	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideReviewRepo, provideBookingService, provideReviewService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	packageRepo repositories.PackageRepository,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, packageRepo)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	packageRepo repositories.PackageRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, packageRepo)
}
