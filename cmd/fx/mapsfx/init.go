package mapsfx

import (
	"go.uber.org/fx"

	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	provideMapsService)

func provideMapsService() services.MapsServiceInterface {
	return services.NewMapsService()
}
