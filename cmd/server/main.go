package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arefin/procurehub-backend/config"
	"github.com/arefin/procurehub-backend/internal/app/controller"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"github.com/arefin/procurehub-backend/internal/app/service"
	"github.com/arefin/procurehub-backend/internal/db"
	"github.com/arefin/procurehub-backend/internal/middleware"
	"github.com/arefin/procurehub-backend/internal/router"
	"github.com/arefin/procurehub-backend/internal/scheduler"
	"github.com/arefin/procurehub-backend/internal/websocket"
	"github.com/arefin/procurehub-backend/pkg/logger"
	"github.com/arefin/procurehub-backend/pkg/orders"
	"github.com/arefin/procurehub-backend/pkg/redis"
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

	logger.Info("Starting PROCUREHUB Backend Server", map[string]interface{}{
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

	// Initialize Redis (draft slots live here)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to initialize Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	companyRepo := repository.NewCompanyRepository(db.GetDB())
	employeeRepo := repository.NewEmployeeRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	notificationRepo := repository.NewNotificationRepository(db.GetDB())
	draftRepo := repository.NewDraftRepository(redis.GetClient())

	// Upstream order client
	orderClient, err := orders.NewClient(orders.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})
	if err != nil {
		logger.Fatal("Failed to create upstream order client", err)
	}

	// WebSocket hub for order notifications
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	productService := service.NewProductService(productRepo)
	companyService := service.NewCompanyService(companyRepo, employeeRepo)
	draftService := service.NewDraftService(draftRepo, productRepo, employeeRepo)
	notificationService := service.NewNotificationService(notificationRepo, hub, cfg.Notify.OrderEvent)
	checkoutService := service.NewCheckoutService(draftRepo, orderRepo, notificationService, orderClient)
	orderService := service.NewOrderService(orderRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	companyController := controller.NewCompanyController(companyService)
	draftController := controller.NewDraftController(draftService)
	checkoutController := controller.NewCheckoutController(checkoutService)
	orderController := controller.NewOrderController(orderService)
	notificationController := controller.NewNotificationController(notificationService, hub)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Start the stale draft sweeper
	draftSweeper := scheduler.NewDraftExpiryScheduler(draftRepo, cfg.Drafts.SweepSchedule, cfg.Drafts.TTL)
	if err := draftSweeper.Start(); err != nil {
		logger.Fatal("Failed to start draft expiry scheduler", err)
	}
	defer draftSweeper.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		companyController,
		draftController,
		checkoutController,
		orderController,
		notificationController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

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
