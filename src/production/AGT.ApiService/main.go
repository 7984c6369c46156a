package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ai "gitlab.com/unnchai/agro.backend/src/production/AGT.Ai"
	"gitlab.com/unnchai/agro.backend/src/production/AGT.ApiService/controllers"
	container "gitlab.com/unnchai/agro.backend/src/production/AGT.Container"
	logger "gitlab.com/unnchai/agro.backend/src/production/AGT.Logger"
	implementation "gitlab.com/unnchai/agro.backend/src/production/AGT.Repository/Implementation"
)

func main() {
	// Initialize dependency injection container
	ctr, err := container.NewApiContainer()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize container: %v", err))
	}
	defer ctr.Shutdown(context.Background())

	log := ctr.GetLogger()
	log.Info("Starting Agro-tech API Service")

	// Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ctr.ConnectMongo(ctx); err != nil {
		log.FatalWithError(err, "Failed to connect to MongoDB")
	}

	config := ctr.GetConfig()

	// Create repositories
	recordRepo := implementation.NewMongoRecordRepository(ctr.GetRecordCollection())
	chatRepo := implementation.NewMongoChatRepository(ctr.GetChatCollection(), ai.SystemMessage())

	// Create AI collaborators
	predictor := ai.NewPredictor()
	chatClient := ai.NewChatClient(&config.AI)

	// Initialize Gin router
	router := gin.New()
	router.Use(requestLogger(log))
	router.Use(gin.Recovery())

	// Configure CORS from config
	corsConfig := cors.Config{
		AllowOrigins:     config.CORS.AllowedOrigins,
		AllowMethods:     config.CORS.AllowedMethods,
		AllowHeaders:     config.CORS.AllowedHeaders,
		ExposeHeaders:    config.CORS.ExposedHeaders,
		AllowCredentials: config.CORS.AllowCredentials,
		MaxAge:           time.Duration(config.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	// Create controllers and register routes
	sensorController := controllers.NewSensorController(recordRepo, predictor, log)
	chatController := controllers.NewChatController(chatRepo, chatClient, log)
	healthController := controllers.NewHealthController(ctr)

	sensorController.RegisterRoutes(router)
	chatController.RegisterRoutes(router)
	healthController.RegisterRoutes(router)

	port := config.Server.Port

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
		IdleTimeout:  config.Server.IdleTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("HTTP server starting on port " + port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.FatalWithError(err, "Failed to start HTTP server")
		}
	}()

	log.Info("API service running... press Ctrl+C to stop")

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info("Shutting down...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithError(err, "Server forced to shutdown")
	}
}

// requestLogger writes one line per request to the process log file
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.WithFields(map[string]interface{}{
			"method":  ctx.Request.Method,
			"path":    ctx.Request.URL.Path,
			"status":  ctx.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("Request handled")
	}
}
