package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sportindex/sportindex/football"
	httpapi "github.com/sportindex/sportindex/internal/api/http"
	"github.com/sportindex/sportindex/internal/app/httpapp"
	"github.com/sportindex/sportindex/internal/application/service"
	"github.com/sportindex/sportindex/internal/config"
	postgres "github.com/sportindex/sportindex/internal/infrastructures/db/postgres/repo"
	rediscache "github.com/sportindex/sportindex/internal/infrastructures/db/redis"
)

func main() {
	cfg := config.MustLoad()
	log := setupLogger(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("fixture-syncd starting",
		zap.String("env", cfg.Env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("teams", cfg.Sync.Teams),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := postgres.New(ctx, cfg.DB.DatabaseURL())
	if err != nil {
		log.Fatal("connect to postgres", zap.Error(err))
	}
	defer repo.Close()

	cache := rediscache.NewFixtureCache(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}))

	footballOpts := []football.Option{
		football.WithTimeout(cfg.Football.Timeout),
		football.WithRetries(cfg.Football.Retries, cfg.Football.RetryDelay),
		football.WithLanguage(cfg.Football.Language),
		football.WithLogger(log.Named("football")),
	}
	if cfg.Football.BaseURL != "" {
		footballOpts = append(footballOpts, football.WithBaseURL(cfg.Football.BaseURL))
	}
	source := football.New(footballOpts...)

	fixtures := service.NewFixtureService(log.Named("fixtures"), source, repo, cache, cfg.Redis.TTL)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Sync.Schedule, func() {
		syncAll(ctx, log, fixtures, cfg.Sync.Teams)
	}); err != nil {
		log.Fatal("schedule fixture sync", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Warm the store once on boot so the API serves data before the first
	// cron tick.
	go syncAll(ctx, log, fixtures, cfg.Sync.Teams)

	api := httpapi.NewServer(log.Named("api"), fixtures)
	app := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.Timeout, api.Router())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
		app.Stop()
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped", zap.Error(err))
		}
	}
}

func syncAll(ctx context.Context, log *zap.Logger, fixtures *service.FixtureService, teams []string) {
	for _, teamID := range teams {
		syncCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		if _, err := fixtures.SyncTeam(syncCtx, teamID); err != nil {
			log.Warn("team sync failed", zap.String("team_id", teamID), zap.Error(err))
		}
		cancel()

		if ctx.Err() != nil {
			return
		}
	}
}

func setupLogger(level string) *zap.Logger {
	zapLevel := parseLogLevel(level)
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
