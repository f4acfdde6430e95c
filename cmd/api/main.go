package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"nzwalks/internal/config"
	"nzwalks/internal/database"
	"nzwalks/internal/database/migration"
	handlers "nzwalks/internal/http/handler"
	"nzwalks/internal/http/middleware"
	"nzwalks/internal/logger"
	"nzwalks/internal/otel"
	"nzwalks/internal/repository/postgres"
	"nzwalks/internal/service"
	"nzwalks/internal/storage"
)

const (
	// multipart framing on top of the largest accepted file
	bodyLimitHeadroom = 1 << 20
	shutdownTimeout   = 10 * time.Second
)

// @title NZ Walks API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.Init(cfg.Env, cfg.LogLevel, cfg.Location)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	store := database.NewStore(db)
	regionRepo := postgres.NewRegionPostgres(store)
	walkRepo := postgres.NewTrailPostgres(store)
	imageRepo := postgres.NewImagePostgres(store)
	imageSvc := service.NewImageService(objStore, imageRepo, cfg.Upload.MaxBytes)

	auth := middleware.NewAuth(cfg.Auth)
	if !auth.Enabled() {
		log.Warn().Msg("JWT_SECRET is empty, role checks are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Upload.MaxBytes) + bodyLimitHeadroom,
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:       db,
		Regions:  regionRepo,
		Walks:    walkRepo,
		Images:   imageSvc,
		Auth:     auth,
		Gatherer: registry,
	})

	handlers.RegisterDocs(app)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("server_starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
	}

	log.Info().Msg("server_stopping")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error().Err(err).Msg("tracing shutdown failed")
	}
}
