package config

import (
	"fmt"
	"os"

	"github.com/iamchrisas/macrotracker-back/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The image assigned to entries logged without a photo. Overridable via
// PLACEHOLDER_IMAGE_URL since the asset has moved between deployments.
const defaultPlaceholderImage = "https://substackcdn.com/image/fetch/f_auto,q_auto:good,fl_progressive:steep/https%3A%2F%2Fbucketeer-e05bbc84-baa3-437e-9518-adb32be77984.s3.amazonaws.com%2Fpublic%2Fimages%2Fda435093-5e78-410d-b72b-ba3500a18130"

// Config holds all application configuration.
type Config struct {
	ServerAddr          string
	Database            DatabaseConfig
	Logger              LoggerConfig
	JWTSecret           string
	S3                  S3Config
	PlaceholderImageURL string
}

// DatabaseConfig holds postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// S3Config holds the image bucket settings.
type S3Config struct {
	Region        string
	Bucket        string
	CloudFrontURL string
}

// Load reads .env if present and builds the configuration from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "macrotracker"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWTSecret: os.Getenv("JWT_SECRET"),
		S3: S3Config{
			Region:        getEnv("S3_REGION", getEnv("AWS_REGION", "eu-west-1")),
			Bucket:        getEnv("S3_BUCKET", ""),
			CloudFrontURL: getEnv("CLOUDFRONT_URL", ""),
		},
		PlaceholderImageURL: getEnv("PLACEHOLDER_IMAGE_URL", defaultPlaceholderImage),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// OpenDB connects to postgres and migrates the schema.
func OpenDB(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Review{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
