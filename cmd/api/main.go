package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/REBCDR07/marketconnect/internal/client"
	"github.com/REBCDR07/marketconnect/internal/config"
	"github.com/REBCDR07/marketconnect/internal/logging"
	"github.com/REBCDR07/marketconnect/internal/repository"
	"github.com/REBCDR07/marketconnect/internal/server"
	"github.com/REBCDR07/marketconnect/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := client.InitSQLiteClient(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	if cfg.SeedDemo {
		if err := client.SeedDemoData(db); err != nil {
			logger.Fatal("seed demo data", zap.Error(err))
		}
		logger.Info("demo data seeded")
	}

	imageClient := client.NewImageClient(cfg.Images.BaseURL)
	suggestClient := client.NewSuggestClient(&cfg.Suggest)

	userRepo := repository.NewUserRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	profileRepo := repository.NewAdminProfileRepository(db)

	notificationService := service.NewNotificationService(notificationRepo)
	authService := service.NewAuthService(db, userRepo, cfg.Auth, cfg.Admin, logger)
	applicationService := service.NewApplicationService(
		db, applicationRepo, sellerRepo, userRepo, notificationService, imageClient, logger)
	catalogService := service.NewCatalogService(productRepo, sellerRepo, suggestClient)
	orderService := service.NewOrderService(
		orderRepo, productRepo, sellerRepo, notificationService, logger)
	profileService := service.NewAdminProfileService(profileRepo)
	statsService := service.NewStatsService(sellerRepo, productRepo, orderRepo, applicationRepo)

	ctx := context.Background()
	if err := authService.SeedAdmin(ctx); err != nil {
		logger.Fatal("seed admin account", zap.Error(err))
	}

	srv := server.NewServer(
		cfg.Auth.JWTSecret, logger,
		authService, applicationService, catalogService,
		orderService, notificationService, profileService, statsService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
