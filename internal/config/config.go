// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage driver selection.
const (
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// Key derivation mode for uploaded objects.
const (
	KeyModeTimestamp = "timestamp"
	KeyModeRandom    = "random"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Object storage (S3-compatible: MinIO locally, Cloudflare R2 in production)
	StorageDriver     string
	StorageEndpoint   string
	StorageAccessKey  string
	StorageSecretKey  string
	StorageBucket     string
	StorageUseSSL     bool
	StoragePublicBase string // browser-accessible base URL, e.g. "http://localhost:9000/images"

	// s3 driver only
	S3AccountID    string // Cloudflare R2 account; builds the endpoint when S3Endpoint is empty
	S3Region       string
	S3Endpoint     string
	S3UsePathStyle bool

	// CORS
	AllowedOrigins []string
	FallbackOrigin string // echoed for requests whose Origin is not allow-listed

	KeyMode     string
	MaxUploadMB int64
}

// Load reads configuration from a .env file (if present) and environment
// variables. It returns an error when a required storage credential is
// missing so startup fails instead of the first request.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	cfg := &Config{
		Port:   getEnv("PORT", "8081"),
		AppEnv: getEnv("APP_ENV", "development"),

		StorageDriver:     getEnv("STORAGE_DRIVER", DriverMinio),
		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:  os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:     os.Getenv("STORAGE_BUCKET"),
		StorageUseSSL:     getEnv("STORAGE_USE_SSL", "false") == "true",
		StoragePublicBase: os.Getenv("STORAGE_PUBLIC_BASE"),

		S3AccountID:    os.Getenv("S3_ACCOUNT_ID"),
		S3Region:       getEnv("S3_REGION", "auto"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3UsePathStyle: getEnv("S3_USE_PATH_STYLE", "false") == "true",

		AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		FallbackOrigin: os.Getenv("CORS_FALLBACK_ORIGIN"),

		KeyMode:     getEnv("KEY_MODE", KeyModeTimestamp),
		MaxUploadMB: getEnvInt64("MAX_UPLOAD_MB", 10),
	}

	if cfg.FallbackOrigin == "" && len(cfg.AllowedOrigins) > 0 {
		cfg.FallbackOrigin = cfg.AllowedOrigins[0]
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverMinio, DriverS3:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	var missing []string
	if c.StorageAccessKey == "" {
		missing = append(missing, "STORAGE_ACCESS_KEY")
	}
	if c.StorageSecretKey == "" {
		missing = append(missing, "STORAGE_SECRET_KEY")
	}
	if c.StorageBucket == "" {
		missing = append(missing, "STORAGE_BUCKET")
	}
	if c.StorageDriver == DriverS3 && c.S3AccountID == "" && c.S3Endpoint == "" {
		missing = append(missing, "S3_ACCOUNT_ID or S3_ENDPOINT")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.KeyMode {
	case KeyModeTimestamp, KeyModeRandom:
	default:
		return fmt.Errorf("unknown KEY_MODE %q", c.KeyMode)
	}
	return nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// MaxUploadBytes returns the request body cap for uploads.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
