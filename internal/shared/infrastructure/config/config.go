package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/saransh1220/animal-drop/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Database    database.PostgresConfig
	Redis       database.RedisConfig
	FileStorage FileStorageConfig
	Preview     PreviewConfig
	Upload      UploadConfig
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS" envDefault:"*"`
	ReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// FileStorageConfig holds file storage configuration
type FileStorageConfig struct {
	UseS3            bool   `env:"USE_S3" envDefault:"false"`
	S3Region         string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3PublicEndpoint string `env:"S3_PUBLIC_ENDPOINT"`
	S3AccessKey      string `env:"S3_ACCESS_KEY"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3BucketName     string `env:"S3_BUCKET"`
	S3UseSSL         bool   `env:"S3_USE_SSL" envDefault:"true"`
	LocalPath        string `env:"LOCAL_STORAGE_PATH" envDefault:"./static/uploads"`
	LocalBaseURL     string `env:"LOCAL_STORAGE_URL" envDefault:"/static/uploads"`
}

// PreviewConfig holds preview image configuration
type PreviewConfig struct {
	ImageDir string        `env:"PREVIEW_IMAGE_DIR" envDefault:"./static/img"`
	MaxDim   int           `env:"PREVIEW_MAX_DIM" envDefault:"800"`
	CacheTTL time.Duration `env:"PREVIEW_CACHE_TTL" envDefault:"10m"`
}

// UploadConfig holds upload endpoint configuration
type UploadConfig struct {
	MaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
}

// Load reads configuration from an optional .env file and the environment
func Load() (Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FileStorage.S3PublicEndpoint == "" {
		cfg.FileStorage.S3PublicEndpoint = cfg.FileStorage.S3Endpoint
	}
	return cfg, nil
}
