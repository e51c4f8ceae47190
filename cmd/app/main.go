package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"konkanbliss/cmd/fx/accountfx"
	"konkanbliss/cmd/fx/bookingfx"
	"konkanbliss/cmd/fx/catalogfx"
	"konkanbliss/cmd/fx/chatfx"
	"konkanbliss/cmd/fx/controllersfx"
	"konkanbliss/cmd/fx/dashboardfx"
	"konkanbliss/cmd/fx/dbfx"
	"konkanbliss/cmd/fx/itineraryfx"
	"konkanbliss/cmd/fx/mapsfx"
	"konkanbliss/cmd/fx/statsfx"
	"konkanbliss/internal/api/controllers"
	"konkanbliss/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		itineraryfx.Module,
		dashboardfx.Module,
		chatfx.Module,
		mapsfx.Module,
		accountfx.Module,
		bookingfx.Module,
		statsfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	packagesController *controllers.PackagesController,
	destinationsController *controllers.DestinationsController,
	itineraryController *controllers.ItineraryController,
	dashboardController *controllers.DashboardController,
	chatController *controllers.ChatController,
	mapsController *controllers.MapsController,
	accountController *controllers.AccountController,
	bookingsController *controllers.BookingsController,
	statsController *controllers.StatsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		packagesController,
		destinationsController,
		itineraryController,
		dashboardController,
		chatController,
		mapsController,
		accountController,
		bookingsController,
		statsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	packagesController *controllers.PackagesController,
	destinationsController *controllers.DestinationsController,
	itineraryController *controllers.ItineraryController,
	dashboardController *controllers.DashboardController,
	chatController *controllers.ChatController,
	mapsController *controllers.MapsController,
	accountController *controllers.AccountController,
	bookingsController *controllers.BookingsController,
	statsController *controllers.StatsController) {

	packagesGroup := r.Group("/packages")
	packagesGroup.GET("", packagesController.SearchPackages)
	packagesGroup.GET("/:id", packagesController.GetPackageByID)
	packagesGroup.GET("/:id/reviews", bookingsController.ListReviews)
	packagesGroup.POST("/:id/reviews", middleware.JWTAuthMiddleware(), bookingsController.AddReview)
	packagesGroup.POST("/:id/bookings", middleware.JWTAuthMiddleware(), bookingsController.CreateBooking)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.SearchDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationByID)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)

	chatGroup := r.Group("/chat")
	chatGroup.POST("", chatController.SendMessage)

	mapsGroup := r.Group("/maps")
	mapsGroup.GET("/places", mapsController.ListPlaces)
	mapsGroup.GET("/directions", mapsController.GetDirections)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	dashboardGroup := r.Group("/dashboard", middleware.JWTAuthMiddleware())
	dashboardGroup.GET("/itineraries", dashboardController.ListItineraries)
	dashboardGroup.POST("/itineraries", dashboardController.AddItinerary)
	dashboardGroup.DELETE("/itineraries/:id", dashboardController.RemoveItinerary)
	dashboardGroup.GET("/experiences", dashboardController.ListExperiences)
	dashboardGroup.POST("/experiences", dashboardController.AddExperience)
	dashboardGroup.DELETE("/experiences/:id", dashboardController.RemoveExperience)

	bookingsGroup := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookingsGroup.GET("", bookingsController.ListMyBookings)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/stats", statsController.GetStats)
	adminGroup.POST("/packages", packagesController.CreatePackage)
}
