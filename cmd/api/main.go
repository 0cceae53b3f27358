package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"suggestbox/internal/api"
	"suggestbox/internal/catalog"
	"suggestbox/internal/config"
	"suggestbox/internal/favorites"
	"suggestbox/internal/status"
	"suggestbox/internal/suggest"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("cannot build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool := mustOpenDB(ctx, cfg.DatabaseDSN, logger)
	defer dbPool.Close()

	catalogRepo := catalog.NewPostgresRepo(dbPool)
	catalogService := catalog.NewService(catalogRepo, logger)

	// Seed before accepting traffic. A failure here is fatal; there is
	// no partial-start mode.
	dataset, err := catalog.LoadDataset()
	if err != nil {
		logger.Fatal("cannot load seed dataset", zap.Error(err))
	}
	if err := catalogService.Seed(ctx, dataset); err != nil {
		logger.Fatal("cannot seed catalog", zap.Error(err))
	}

	suggestService := suggest.NewService(suggest.NewPostgresRepo(dbPool))
	favoritesService := favorites.NewService(favorites.NewPostgresRepo(dbPool), catalogService)

	router := api.NewRouter(cfg, logger, dbPool,
		catalog.NewHTTPHandler(catalogService),
		suggest.NewHTTPHandler(suggestService),
		favorites.NewHTTPHandler(favoritesService),
		status.NewHTTPHandler(status.NewPostgresRepo(dbPool)),
	)

	server := api.NewServer(cfg.Addr, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.PrettyLog {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
	}
	if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

func mustOpenDB(ctx context.Context, dsn string, logger *zap.Logger) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}
