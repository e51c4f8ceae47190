package dashboardfx

import (
	"go.uber.org/fx"

	"konkanbliss/internal/services"
	"konkanbliss/pkg/localstore"
)

var Module = fx.Provide(
	provideStore, provideDashboardService)

func provideStore() localstore.Store {
	return localstore.NewMemoryStore()
}

func provideDashboardService(store localstore.Store) services.DashboardServiceInterface {
	return services.NewDashboardService(store)
}
