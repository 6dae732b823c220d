package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quickwash/config"
	"quickwash/cron"
	"quickwash/database"
	bayRepoPkg "quickwash/database/repository/bay"
	reservationRepoPkg "quickwash/database/repository/reservation"
	stationRepoPkg "quickwash/database/repository/station"
	userRepoPkg "quickwash/database/repository/user"
	"quickwash/handlers"
	"quickwash/middleware"
	"quickwash/routes"
	"quickwash/services/availability"
	"quickwash/services/bay"
	"quickwash/services/reservation"
	"quickwash/services/station"
	"quickwash/services/user"
	"quickwash/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient := database.Connect()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	stationRepo := stationRepoPkg.NewMongoStationRepo(mongoClient)
	bayRepo := bayRepoPkg.NewMongoBayRepo(mongoClient)
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo(mongoClient)
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient)

	// services.
	engine := availability.NewEngine(config.AppConfig.CivilOffsetHours)

	stationService := &station.DefaultStationService{
		Repo:            stationRepo,
		BayRepo:         bayRepo,
		ReservationRepo: reservationRepo,
		Engine:          engine,
	}
	bayService := &bay.DefaultBayService{
		Repo:        bayRepo,
		StationRepo: stationRepo,
	}
	reservationService := &reservation.DefaultReservationService{
		Repo:    reservationRepo,
		BayRepo: bayRepo,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	stationHandler := handlers.NewStationHandler(stationService)
	bayHandler := handlers.NewBayHandler(bayService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Station endpoints.
		CreateStationHandler:      stationHandler.CreateStationHandler,
		GetStationHandler:         stationHandler.GetStationHandler,
		NearbyStationsHandler:     stationHandler.NearbyStationsHandler,
		NearbyAvailabilityHandler: stationHandler.NearbyAvailabilityHandler,

		// Bay endpoints.
		ListBaysHandler:  bayHandler.ListBaysHandler,
		CreateBayHandler: bayHandler.CreateBayHandler,
		UpdateBayHandler: bayHandler.UpdateBayHandler,
		DeleteBayHandler: bayHandler.DeleteBayHandler,

		// Reservation endpoints.
		CreateReservationHandler:   reservationHandler.CreateReservationHandler,
		CheckoutHandler:            reservationHandler.CheckoutHandler,
		MyReservationsHandler:      reservationHandler.MyReservationsHandler,
		StationReservationsHandler: reservationHandler.StationReservationsHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background finalizer for expired reservations.
	cron.InitFinalizerWorker(reservationRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
