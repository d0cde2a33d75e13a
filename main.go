// File: goodjob/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goodjob/config"
	"goodjob/cron"
	"goodjob/database"
	workingsRepo "goodjob/database/repository/workings"
	"goodjob/handlers"
	"goodjob/middleware"
	"goodjob/routes"
	"goodjob/services/tasks"
	"goodjob/services/workings"
	"goodjob/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()
	utils.StartHealthMonitor(appCtx, utils.GetCacheClient(), database.MongoClient, 30*time.Second)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := workingsRepo.NewMongoWorkingRepo()
	if err := repo.EnsureIndexes(appCtx); err != nil {
		logger.Warn("main: failed to ensure workings indexes", zap.Error(err))
	}

	// background cache invalidation.
	statsCache := workings.NewRedisStatsCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.StatsCacheTTLSeconds)*time.Second,
	)
	queueClient := asynq.NewClient(tasks.RedisOpt())
	defer queueClient.Close()
	worker := cron.InitStatsWorker(statsCache)

	// services.
	workingService := &workings.DefaultWorkingService{
		Repo:        repo,
		Cache:       statsCache,
		Invalidator: tasks.NewAsynqInvalidator(queueClient),
		Options:     workings.OptionsFromConfig(),
		Logger:      logger.With(zap.String("service", "workings")),
	}

	// Register routes with the assembled handler bundle.
	handlerBundle := handlers.NewHandlerBundle(handlers.NewWorkingsHandler(workingService))
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	stopApp()
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
