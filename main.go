// File: dentistimo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentistimo/bus"
	"dentistimo/config"
	"dentistimo/database"
	bookingRepo "dentistimo/database/repository/booking"
	dentistRepo "dentistimo/database/repository/dentist"
	"dentistimo/handlers"
	"dentistimo/services/booking"
	"dentistimo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	busClient := bus.NewClient()
	if err := busClient.Connect(); err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MQTT broker: %v", err)
	}

	// repositories.
	dentists := dentistRepo.NewCachedDentistRepo(
		dentistRepo.NewMongoDentistRepo(),
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.DentistCacheTTLMin)*time.Minute,
	)
	bookings := bookingRepo.NewMongoBookingRepo()

	// services and message handlers.
	admissionService := booking.NewDefaultAdmissionService(dentists, bookings)
	bookingHandler := handlers.NewBookingHandler(admissionService, busClient)
	dentistHandler := handlers.NewDentistHandler(dentists, busClient)

	if err := busClient.Subscribe(bus.TopicBookingSave, bookingHandler.HandleSave); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := busClient.Subscribe(bus.TopicDentistRequest, dentistHandler.HandleRequest); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	logger.Sugar().Infof("Subscribed to topics: %s & %s", bus.TopicDentistRequest, bus.TopicBookingSave)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient, busClient.Connected)

	// Ops HTTP server: health endpoint only, no caller-facing API.
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting ops server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: ops server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: coordinator is shutting down...")

	busClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: ops server forced to shutdown: %v", err)
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: coordinator stopped gracefully")
}
