// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cambiatus/gateway/internal/admin"
	"github.com/cambiatus/gateway/internal/config"
	"github.com/cambiatus/gateway/internal/core"
	"github.com/cambiatus/gateway/internal/environment"
	"github.com/cambiatus/gateway/internal/flags"
	"github.com/cambiatus/gateway/internal/graph"
	"github.com/cambiatus/gateway/internal/health"
	"github.com/cambiatus/gateway/internal/middleware"
	"github.com/cambiatus/gateway/internal/profile"
	"github.com/cambiatus/gateway/internal/server"
	"github.com/cambiatus/gateway/internal/translations"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	graphClient, err := graph.NewHTTPClient(cfg.Graph)
	if err != nil {
		return err
	}
	logger.Info("graphql client initialized",
		"url", cfg.Graph.URL,
	)

	translationStore, err := translations.NewStore(cfg.Translations, redis.Client)
	if err != nil {
		return err
	}
	logger.Info("translation bundles loaded",
		"dir", cfg.Translations.Dir,
	)

	environmentHandler := environment.NewHandler()
	flagsHandler := flags.NewHandler()
	profileHandler := profile.NewHandler(profile.NewService(graphClient))
	translationsHandler := translations.NewHandler(translationStore)

	healthHandler := health.NewHandler(redis, graphClient)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
		GraphPing:  graphClient.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			KeyFunc:  middleware.KeyByIPAndEndpoint,
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	translationsHandler.RegisterAssetRoutes(router)

	router.Route("/v1", func(r chi.Router) {
		environmentHandler.RegisterRoutes(r)
		flagsHandler.RegisterRoutes(r)
		profileHandler.RegisterRoutes(r)
		translationsHandler.RegisterRoutes(r)
		adminHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := graphClient.Close(); err != nil {
		logger.Error("graphql client close error", "error", err)
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
