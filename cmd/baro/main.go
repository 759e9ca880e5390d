package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baro-weather/baro/internal/api"
	"github.com/baro-weather/baro/internal/config"
	"github.com/baro-weather/baro/internal/events"
	"github.com/baro-weather/baro/internal/geocode"
	"github.com/baro-weather/baro/internal/i18n"
	"github.com/baro-weather/baro/internal/meteo"
	"github.com/baro-weather/baro/internal/observability"
	"github.com/baro-weather/baro/internal/report"
	"github.com/baro-weather/baro/internal/scoring"
	"github.com/baro-weather/baro/internal/store"
)

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to event bus, running without events", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to event bus")
		}
	}

	metrics := observability.NewMetrics()
	bundle := i18n.NewBundle()
	engine := scoring.NewEngine(bundle)

	// Weather and geocoding clients
	meteoClient := meteo.NewClient(cfg.Meteo.ForecastURL, cfg.Meteo.ArchiveURL, cfg.MeteoTimeout(), logger)
	geocoder := geocode.NewCachedGeocoder(
		geocode.NewClient(cfg.Geocode.URL, cfg.GeocodeTimeout(), logger),
		cfg.Geocode.CacheSize,
	)

	// Narrative reports (optional, needs an API key)
	var generator api.ReportGenerator
	if cfg.Report.APIKey != "" {
		chatClient, err := report.NewChatClient(cfg.Report.APIKey, cfg.Report.BaseURL, cfg.ReportTimeout())
		if err != nil {
			logger.Error("failed to build chat client", "error", err)
			os.Exit(1)
		}
		generator = report.NewGenerator(meteoClient, engine, chatClient, db, eventsClient, cfg.Report.Model, metrics, logger)
	} else {
		logger.Warn("no report api key configured, report generation disabled")
	}

	// API server
	router := api.NewRouter(api.Deps{
		Store:     db,
		Geocoder:  geocoder,
		Forecast:  meteoClient,
		Engine:    engine,
		Languages: bundle,
		Events:    eventsClient,
		Generator: generator,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	})
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}
