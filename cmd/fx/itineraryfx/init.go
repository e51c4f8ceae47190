package itineraryfx

import (
	"go.uber.org/fx"

	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	provideItineraryService)

func provideItineraryService() services.ItineraryServiceInterface {
	return services.NewItineraryService()
}
