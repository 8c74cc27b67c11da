package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mcoot/playerroster/internal/api"
	"github.com/mcoot/playerroster/internal/config"
	"github.com/mcoot/playerroster/internal/factory"
	"github.com/mcoot/playerroster/internal/logger"
	redisstorage "github.com/mcoot/playerroster/internal/storage/redis"
	"github.com/mcoot/playerroster/internal/storage/sqlstore"
)

func main() {
	// A missing .env is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
		File: logger.FileConfig{
			Path:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	app, err := factory.New(factoryConfig(cfg, log))
	if err != nil {
		log.Fatal("failed to create application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("failed to close storage", zap.Error(err))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:        log,
		PlayerService: app.PlayerService,
	})

	server := api.NewServer(router, api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, log)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	log.Info("server started",
		zap.String("addr", server.Addr()),
		zap.String("storage", cfg.Storage.Type),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", zap.Error(err))
			return
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error("shutdown error", zap.Error(err))
			return
		}
	}

	log.Info("server stopped")
}

func factoryConfig(cfg *config.AppConfig, log *zap.Logger) factory.Config {
	fc := factory.Config{
		Logger:      log,
		StorageType: cfg.Storage.Type,
	}

	switch cfg.Storage.Type {
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.Redis.URL
		redisCfg.PoolSize = cfg.Storage.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Storage.Redis.MinIdleConns
		fc.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		fc.SQLitePath = cfg.Storage.SQLite.Path
	case factory.StorageTypePostgres:
		fc.PostgresDSN = cfg.Storage.Postgres.URI
		fc.PostgresPool = sqlstore.PoolConfig{
			MaxOpenConns:    cfg.Storage.Postgres.MaxConns,
			MaxIdleConns:    cfg.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Storage.Postgres.MaxConnLifetime,
		}
	}

	return fc
}
