package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	movieDelivery "github.com/martinmanurung/cinecatalog/internal/domain/movies/delivery"
	movieRepository "github.com/martinmanurung/cinecatalog/internal/domain/movies/repository"
	movieUsecase "github.com/martinmanurung/cinecatalog/internal/domain/movies/usecase"
	"github.com/martinmanurung/cinecatalog/internal/platform/config"
	"github.com/martinmanurung/cinecatalog/internal/platform/dataset"
	"github.com/martinmanurung/cinecatalog/internal/platform/metrics"
	"github.com/martinmanurung/cinecatalog/pkg/serializer"
	customValidator "github.com/martinmanurung/cinecatalog/pkg/validator"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {
	// Setup zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	zlog.Info().Msg("Starting CineCatalog browser...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("Failed to load config")
	}
	setupLogger(cfg.Log)

	ctx := context.Background()

	// Load the catalog; a failed load keeps serving the empty state
	m := metrics.New()
	movieRepo, err := movieRepository.LoadMovieRepository(ctx, cfg.Dataset)
	if err != nil {
		if errors.Is(err, dataset.ErrDataLoad) {
			zlog.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("Dataset could not be loaded, serving an empty catalog")
		} else {
			zlog.Fatal().Err(err).Msg("Failed to initialize catalog")
		}
	}
	logLoadReport(movieRepo.Report())
	m.ObserveLoad(movieRepo.Count(), movieRepo.Report().WarningsByColumn())

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = customValidator.New()
	e.JSONSerializer = serializer.GoJSONSerializer{}
	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second

	// Initialize use cases and handlers
	movieUsecaseInstance := movieUsecase.NewMovieUsecase(movieRepo, m, cfg.Browse)
	pageHandler := movieDelivery.NewPageHandler(movieUsecaseInstance, cfg.Browse)
	movieHandler := movieDelivery.NewMovieHandler(movieUsecaseInstance)

	// Setup routes
	setupRoutes(e, pageHandler, movieHandler, movieRepo, m)

	// Start server in goroutine
	go func() {
		port := cfg.Server.Port
		if port == "" {
			port = "8080"
		}

		zlog.Info().Str("port", port).Msg("Starting HTTP server")
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error().Err(err).Msg("Server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	zlog.Info().Msg("Server exited successfully")
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if !cfg.Pretty {
		zlog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}

func logLoadReport(r dataset.LoadReport) {
	zlog.Info().
		Str("path", r.Path).
		Str("format", r.Format).
		Int("rows", r.Rows).
		Int("loaded", r.Loaded).
		Int("warnings", len(r.Warnings)).
		Msg("Catalog loaded")

	for column, n := range r.WarningsByColumn() {
		zlog.Warn().Str("column", column).Int("count", n).Msg("Dataset values coerced to null or rows skipped")
	}
}

