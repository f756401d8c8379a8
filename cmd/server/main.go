package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopfront/shopfront-backend/config"
	"github.com/shopfront/shopfront-backend/internal/app/controller"
	"github.com/shopfront/shopfront-backend/internal/app/repository"
	"github.com/shopfront/shopfront-backend/internal/app/service"
	"github.com/shopfront/shopfront-backend/internal/db"
	"github.com/shopfront/shopfront-backend/internal/router"
	"github.com/shopfront/shopfront-backend/internal/scheduler"
	"github.com/shopfront/shopfront-backend/internal/session"
	"github.com/shopfront/shopfront-backend/internal/storage"
	"github.com/shopfront/shopfront-backend/pkg/logger"
	"github.com/shopfront/shopfront-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting Shopfront Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Pick the session store
	var sessionStore session.Store
	var pruner *scheduler.SessionPruner
	switch cfg.Session.Store {
	case "redis":
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to connect to Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		sessionStore = session.NewRedisStore(redis.GetClient())
	default:
		memStore := session.NewMemoryStore()
		sessionStore = memStore
		pruner = scheduler.NewSessionPruner(memStore)
	}

	sessionManager := session.NewManager(
		sessionStore,
		cfg.Session.Secret,
		cfg.Session.CookieName,
		cfg.Session.TTL,
	)

	// Pick the image storage driver
	var imageStorage storage.ImageStorage
	switch cfg.Upload.Driver {
	case "s3":
		imageStorage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	default:
		imageStorage = storage.NewLocalStorage(cfg.Upload.Dir)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	userRepo := repository.NewUserRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())

	// Initialize services
	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	cartService := service.NewCartService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo)
	authService := service.NewAuthService(userRepo)
	reviewService := service.NewReviewService(reviewRepo)

	// Initialize controllers
	catalogController := controller.NewCatalogController(catalogService, reviewService)
	cartController := controller.NewCartController(cartService)
	orderController := controller.NewOrderController(orderService)
	authController := controller.NewAuthController(authService)
	reviewController := controller.NewReviewController(reviewService)
	adminController := controller.NewAdminController(catalogService, orderService, imageStorage)

	// Setup router
	r := router.NewRouter(
		catalogController,
		cartController,
		orderController,
		authController,
		reviewController,
		adminController,
		sessionManager,
		cfg,
	)
	engine := r.Setup()

	// Start the session pruner for the in-memory store
	if pruner != nil {
		if err := pruner.Start(); err != nil {
			logger.Fatal("Failed to start session pruner", err)
		}
		defer pruner.Stop()
	}

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
