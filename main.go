// File: glowhaus/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowhaus/config"
	"glowhaus/cron"
	"glowhaus/database"
	businessRepo "glowhaus/database/repository/business"
	contentRepo "glowhaus/database/repository/content"
	galleryRepo "glowhaus/database/repository/gallery"
	reviewRepo "glowhaus/database/repository/review"
	"glowhaus/handlers"
	"glowhaus/middleware"
	"glowhaus/routes"
	"glowhaus/services/content"
	"glowhaus/services/media"
	"glowhaus/services/review"
	"glowhaus/services/schedule"
	"glowhaus/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	var mediaService media.MediaService
	if config.AppConfig.CloudinaryCloudName != "" {
		svc, err := media.NewCloudinaryMediaService()
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize cloudinary media service: %v", err)
		}
		mediaService = svc
	} else {
		logger.Warn("main: cloudinary not configured, serving raw media refs")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	bizRepo := businessRepo.NewMongoBusinessRepo()
	cntRepo := contentRepo.NewMongoContentRepo()
	galRepo := galleryRepo.NewMongoGalleryRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()

	// open/closed watcher, re-armed whenever the business profile loads.
	watcher := schedule.NewStatusWatcher(schedule.NewWeek(nil), func(st schedule.OpenStatus) {
		logger.Info("schedule: open status changed",
			zap.Bool("open", st.IsOpen),
			zap.String("label", st.Label),
		)
	}).WithMetrics(schedule.NewMetrics("glowhaus"))
	watcher.Start()

	// services.
	notifier := cron.NewAsynqNotifier()
	reviewService := &review.DefaultReviewService{
		Repo:     revRepo,
		Notifier: notifier,
		Metrics:  review.NewMetrics("glowhaus"),
	}

	contentService := &content.DefaultContentService{
		BusinessRepo: bizRepo,
		ContentRepo:  cntRepo,
		GalleryRepo:  galRepo,
		ReviewSvc:    reviewService,
		Media:        mediaService,
		Cache:        utils.GetCacheClient(),
		Watcher:      watcher,
	}

	contentHandler := handlers.NewContentHandler(contentService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	storageHandler := handlers.NewStorageHandler(mediaService, galRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Content endpoints.
		LandingHandler:       contentHandler.LandingHandler,
		BusinessHandler:      contentHandler.BusinessHandler,
		StatusHandler:        contentHandler.StatusHandler,
		ServicesHandler:      contentHandler.ServicesHandler,
		ServiceBySlugHandler: contentHandler.ServiceBySlugHandler,
		GalleryHandler:       contentHandler.GalleryHandler,
		TestimonialsHandler:  contentHandler.TestimonialsHandler,
		FAQsHandler:          contentHandler.FAQsHandler,

		// Review endpoints.
		SubmitReviewHandler: reviewHandler.SubmitReviewHandler,
		ListReviewsHandler:  reviewHandler.ListReviewsHandler,

		// Gallery administration endpoints.
		StorageHandler: storageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background moderation worker and health monitor.
	cron.InitReviewWorker()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

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

	watcher.Stop()
	if err := notifier.Close(); err != nil {
		logger.Warn("main: failed to close notify queue client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
