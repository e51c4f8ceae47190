package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"konkanbliss/internal/repositories"
	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, provideDestinationRepo, provideCatalogService)

func providePackageRepo(db *gorm.DB) repositories.PackageRepository {
	return repositories.NewPackageRepository(db)
}

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideCatalogService(
	packageRepo repositories.PackageRepository,
	destinationRepo repositories.DestinationRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(packageRepo, destinationRepo)
}
