package statsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"konkanbliss/internal/repositories"
	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	provideStatsRepo, provideStatsService)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideStatsService(statsRepo repositories.StatsRepository) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo)
}
