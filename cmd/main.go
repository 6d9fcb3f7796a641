package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iamchrisas/macrotracker-back/config"
	"github.com/iamchrisas/macrotracker-back/controllers"
	"github.com/iamchrisas/macrotracker-back/repository"
	"github.com/iamchrisas/macrotracker-back/routes"
	"github.com/iamchrisas/macrotracker-back/services"
	"github.com/iamchrisas/macrotracker-back/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting macrotracker API server")

	db, err := config.OpenDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	assets, err := utils.NewS3Store(context.Background(), cfg.S3.Region, cfg.S3.Bucket, cfg.S3.CloudFrontURL)
	if err != nil {
		return fmt.Errorf("failed to initialize S3: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, logger)
	foodSvc := services.NewFoodService(foodRepo, reviewRepo, assets, cfg.PlaceholderImageURL, logger)
	statsSvc := services.NewStatsService(userRepo, foodRepo, logger)
	reviewSvc := services.NewReviewService(reviewRepo, foodRepo, logger)
	userSvc := services.NewUserService(userRepo, logger)

	r := routes.SetupRouter(
		cfg.JWTSecret,
		logger,
		controllers.NewAuthController(authSvc),
		controllers.NewFoodController(foodSvc, statsSvc),
		controllers.NewReviewController(reviewSvc),
		controllers.NewUserController(userSvc),
	)

	logger.Info().Str("addr", cfg.ServerAddr).Msg("listening")
	return r.Run(cfg.ServerAddr)
}
