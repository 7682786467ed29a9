package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aarasalon/config"
	"aarasalon/database"
	bookingRepo "aarasalon/database/repository/booking"
	"aarasalon/handlers"
	"aarasalon/middleware"
	"aarasalon/routes"
	"aarasalon/services/booking"
	"aarasalon/services/notification"
	"aarasalon/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.StartHealthMonitor(database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := bookingRepo.NewMongoBookingRepo(database.GetDatabase())

	// Notifier is optional: without provider credentials the booking flow
	// still succeeds and the skipped notification is logged per request.
	notifier := notification.NewNotifier(config.AppConfig)
	if notifier == nil {
		logger.Sugar().Warn("main: no email provider configured, admin notifications disabled")
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:       repo,
		Notifier:   notifier,
		AdminEmail: config.AppConfig.AdminEmail,
		Logger:     logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		ListBookingsHandler:   bookingHandler.ListBookingsHandler,
		GetBookingByIDHandler: bookingHandler.GetBookingByIDHandler,
		HealthHandler:         handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
