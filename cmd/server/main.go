package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/memora-app/memora-api/internal/cache"
	"github.com/memora-app/memora-api/internal/config"
	"github.com/memora-app/memora-api/internal/database"
	"github.com/memora-app/memora-api/internal/logging"
	"github.com/memora-app/memora-api/internal/server"
	"github.com/memora-app/memora-api/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	stdout := logging.Setup()

	cfg := config.Load()

	if cfg.DBDriver == "postgres" && cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required for postgres")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(stdout, dbLogHandler)))

	// Log cleanup
	cleanup := logging.NewCleanup(db, cfg.LogRetentionDays)
	if err := cleanup.Start(); err != nil {
		slog.Error("log cleanup not scheduled", "error", err)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		}
	}

	// Leaderboard cache (optional)
	var leaderboardCache services.LeaderboardCache
	var redisCache *cache.LeaderboardCache
	if cfg.RedisAddr != "" {
		redisCache, err = cache.NewLeaderboardCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.LeaderboardCacheTTL)
		if err != nil {
			slog.Warn("leaderboard cache disabled", "error", err)
		} else {
			leaderboardCache = redisCache
			slog.Info("leaderboard cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.LeaderboardCacheTTL.String())
		}
	}

	app := server.New(cfg, db, leaderboardCache)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "db_driver", cfg.DBDriver)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	cleanup.Stop()
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
