package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/pscheid92/devbox/internal/adapter/httpserver"
	"github.com/pscheid92/devbox/internal/adapter/memory"
	"github.com/pscheid92/devbox/internal/adapter/metrics"
	"github.com/pscheid92/devbox/internal/adapter/redis"
	"github.com/pscheid92/devbox/internal/app"
	"github.com/pscheid92/devbox/internal/domain"
	"github.com/pscheid92/devbox/internal/platform/config"
	"github.com/pscheid92/devbox/internal/platform/logging"
	"github.com/pscheid92/devbox/internal/platform/version"
)

func runGracefulShutdown(cfg *config.Config, srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupRedis(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) *goredis.Client {
	redisMetrics := metrics.NewRedisMetrics(reg)
	breaker := redis.NewCircuitBreakerHook(func(_, to gobreaker.State) {
		redisMetrics.CircuitState.Set(redis.StateValue(to))
		redisMetrics.CircuitStateChanges.WithLabelValues(to.String()).Inc()
	})

	client, err := redis.NewClient(ctx, cfg.RedisURL, redis.NewMetricsHook(redisMetrics), breaker)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	info := version.Get()
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", info.Version, "commit", info.Commit)

	reg := metrics.NewRegistry()

	var (
		configs      domain.ConfigRepository = memory.NewConfigs()
		healthChecks []httpserver.HealthCheck
	)
	if cfg.RedisURL != "" {
		redisClient := setupRedis(context.Background(), cfg, reg)
		defer func() { _ = redisClient.Close() }()

		configs = redis.NewConfigStore(redisClient, cfg.RedisKeyPrefix)
		healthChecks = append(healthChecks, httpserver.HealthCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		slog.Info("Config documents stored in Redis", "prefix", cfg.RedisKeyPrefix)
	} else {
		slog.Info("REDIS_URL not set, config documents kept in memory")
	}

	appSvc := app.NewService(
		memory.NewApplications(),
		configs,
		memory.NewCatalog(nil),
		memory.NewBindings(),
		clock,
		app.WithMetadata(app.Metadata{ChartRoot: cfg.ChartRoot, EntranceHost: cfg.EntranceHost, IDEPort: cfg.IDEPort}),
		app.WithRecorder(metrics.NewRegistryMetrics(reg)),
	)

	srv := httpserver.NewServer(cfg, appSvc, reg, healthChecks)

	done := runGracefulShutdown(cfg, srv)

	if err := srv.Start(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
