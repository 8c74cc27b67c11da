package factory

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mcoot/playerroster/internal/services/players"
	"github.com/mcoot/playerroster/internal/storage"
	"github.com/mcoot/playerroster/internal/storage/memory"
	redisstorage "github.com/mcoot/playerroster/internal/storage/redis"
	"github.com/mcoot/playerroster/internal/storage/sqlstore"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypeSQLite   = "sqlite"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// Services
	PlayerService *players.Service

	closers []func() error
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *zap.Logger
	// StorageType selects the storage backend ("memory", "redis", "sqlite" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// PostgresDSN is the connection string (required if StorageType is "postgres")
	PostgresDSN  string
	PostgresPool sqlstore.PoolConfig
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var (
		store  storage.Storage
		closer func() error
	)
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store, closer = redisStore, redisStore.Close
	case StorageTypeSQLite:
		sqlStore, err := sqlstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store, closer = sqlStore, sqlStore.Close
	case StorageTypePostgres:
		sqlStore, err := sqlstore.OpenPostgres(cfg.PostgresDSN, cfg.PostgresPool)
		if err != nil {
			return nil, err
		}
		store, closer = sqlStore, sqlStore.Close
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be one of memory, redis, sqlite, postgres", storageType)
	}

	logger.Info("storage ready", zap.String("type", storageType))

	app := newWithDependencies(store, logger)
	if closer != nil {
		app.closers = append(app.closers, closer)
	}
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, logger *zap.Logger) *App {
	return &App{
		Storage:       store,
		PlayerService: players.New(store, logger),
	}
}

// Close releases storage connections
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
