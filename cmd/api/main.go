//	@title			img-host API
//	@version		1.0
//	@description	Minimal image hosting backend — upload an image, get back a public key.
//
//	@host		localhost:8081
//	@BasePath	/

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/yoshikazuuu/img-host/internal/config"
	"github.com/yoshikazuuu/img-host/internal/image"
	"github.com/yoshikazuuu/img-host/internal/logging"
	appMiddleware "github.com/yoshikazuuu/img-host/internal/middleware"
	"github.com/yoshikazuuu/img-host/internal/storage"
	"github.com/yoshikazuuu/img-host/internal/telemetry"

	_ "github.com/yoshikazuuu/img-host/docs/swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(cfg.AppEnv)

	store, err := newStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("object storage init failed")
	}
	logger.Info().
		Str("driver", cfg.StorageDriver).
		Str("bucket", cfg.StorageBucket).
		Msg("object storage ready")

	// Wire dependencies: store → service → handler
	keys := image.NewKeyGenerator(cfg.KeyMode)
	svc := image.NewService(store, keys, logger)
	handler := image.NewHandler(svc, cfg.MaxUploadBytes())

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(appMiddleware.CORS(appMiddleware.CORSConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		FallbackOrigin: cfg.FallbackOrigin,
	}))
	r.Use(telemetry.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Handle("/metrics", telemetry.Handler())

	// Swagger UI — available at http://localhost:8081/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/upload", handler.Upload)
	r.Get("/{key}", handler.Get)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server stopped")
}

// newStore constructs the configured object storage backend. The client is
// built once here and injected into the handlers, never held as a global.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverS3:
		return storage.NewS3Store(context.Background(), storage.S3Config{
			AccessKeyID:     cfg.StorageAccessKey,
			SecretAccessKey: cfg.StorageSecretKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.StorageBucket,
			AccountID:       cfg.S3AccountID,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.StoragePublicBase,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
	default:
		return storage.NewMinioStore(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
	}
}
