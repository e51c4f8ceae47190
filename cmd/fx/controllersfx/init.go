package controllersfx

import (
	"go.uber.org/fx"

	"konkanbliss/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPackagesController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewMapsController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewBookingsController),
	fx.Provide(controllers.NewStatsController))
