package config

import (
	"strings"
	"testing"
)

// setRequired sets the minimum environment for Load to succeed and clears
// the optional variables so each test starts from defaults.
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("STORAGE_ACCESS_KEY", "test-access")
	t.Setenv("STORAGE_SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_BUCKET", "test-bucket")
	for _, key := range []string{
		"PORT", "APP_ENV", "STORAGE_DRIVER", "STORAGE_ENDPOINT",
		"STORAGE_USE_SSL", "STORAGE_PUBLIC_BASE", "S3_ACCOUNT_ID",
		"S3_REGION", "S3_ENDPOINT", "S3_USE_PATH_STYLE",
		"CORS_ALLOWED_ORIGINS", "CORS_FALLBACK_ORIGIN", "KEY_MODE",
		"MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected default port 8081, got %s", cfg.Port)
	}
	if cfg.StorageDriver != DriverMinio {
		t.Errorf("Expected default driver minio, got %s", cfg.StorageDriver)
	}
	if cfg.KeyMode != KeyModeTimestamp {
		t.Errorf("Expected default key mode timestamp, got %s", cfg.KeyMode)
	}
	if cfg.MaxUploadMB != 10 {
		t.Errorf("Expected default max upload 10MB, got %d", cfg.MaxUploadMB)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("Expected default allow-list, got %v", cfg.AllowedOrigins)
	}
	if cfg.FallbackOrigin != "http://localhost:3000" {
		t.Errorf("Expected fallback to default to first allowed origin, got %s", cfg.FallbackOrigin)
	}
}

func TestLoad_MissingCredentialsFails(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_ACCESS_KEY", "")
	t.Setenv("STORAGE_BUCKET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error when storage credentials are missing")
	}
	if !strings.Contains(err.Error(), "STORAGE_ACCESS_KEY") || !strings.Contains(err.Error(), "STORAGE_BUCKET") {
		t.Errorf("Expected error naming the missing variables, got %v", err)
	}
}

func TestLoad_OriginListParsing(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("Expected trimmed origin, got %q", cfg.AllowedOrigins[1])
	}
	if cfg.FallbackOrigin != "https://a.example.com" {
		t.Errorf("Expected fallback to be first allowed origin, got %s", cfg.FallbackOrigin)
	}
}

func TestLoad_ExplicitFallbackOrigin(t *testing.T) {
	setRequired(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("CORS_FALLBACK_ORIGIN", "https://b.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FallbackOrigin != "https://b.example.com" {
		t.Errorf("Expected configured fallback origin, got %s", cfg.FallbackOrigin)
	}
}

func TestLoad_S3DriverRequiresEndpoint(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", DriverS3)

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for s3 driver without account ID or endpoint")
	}

	t.Setenv("S3_ACCOUNT_ID", "abc123")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed with account ID set: %v", err)
	}
	if cfg.S3Region != "auto" {
		t.Errorf("Expected default region auto, got %s", cfg.S3Region)
	}
}

func TestLoad_UnknownDriverFails(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_DRIVER", "ftp")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown storage driver")
	}
}

func TestLoad_UnknownKeyModeFails(t *testing.T) {
	setRequired(t)
	t.Setenv("KEY_MODE", "sequential")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown key mode")
	}
}

func TestLoad_InvalidMaxUploadFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxUploadMB != 10 {
		t.Errorf("Expected fallback max upload 10MB, got %d", cfg.MaxUploadMB)
	}
	if cfg.MaxUploadBytes() != 10<<20 {
		t.Errorf("Expected 10MB in bytes, got %d", cfg.MaxUploadBytes())
	}
}
