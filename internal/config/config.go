package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the complete configuration for the server
type AppConfig struct {
	Environment string        `mapstructure:"environment"`
	LogLevel    string        `mapstructure:"log_level"`
	ServiceName string        `mapstructure:"service_name"`
	Log         LogConfig     `mapstructure:"log"`
	Server      ServerConfig  `mapstructure:"server"`
	Storage     StorageConfig `mapstructure:"storage"`
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Type     string         `mapstructure:"type"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type RedisConfig struct {
	URL          string `mapstructure:"url"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type PostgresConfig struct {
	URI             string        `mapstructure:"uri"`
	MaxConns        int           `mapstructure:"max_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// Load loads configuration from file and environment variables
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Default values
	v.SetDefault("environment", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("service_name", "playerroster")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("storage.type", "memory")
	v.SetDefault("storage.redis.url", "redis://localhost:6379/0")
	v.SetDefault("storage.redis.pool_size", 10)
	v.SetDefault("storage.redis.min_idle_conns", 2)
	v.SetDefault("storage.sqlite.path", "roster.db")
	v.SetDefault("storage.postgres.max_conns", 10)
	v.SetDefault("storage.postgres.max_idle_conns", 2)
	v.SetDefault("storage.postgres.max_conn_lifetime", time.Hour)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	// Explicit bindings so Unmarshal sees nested keys set only in the environment
	_ = v.BindEnv("environment", "ENVIRONMENT")
	_ = v.BindEnv("log_level", "LOG_LEVEL")
	_ = v.BindEnv("service_name", "SERVICE_NAME")
	_ = v.BindEnv("log.file", "LOG_FILE")
	_ = v.BindEnv("server.host", "SERVER_HOST")
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.type", "STORAGE_TYPE")
	_ = v.BindEnv("storage.redis.url", "REDIS_URL")
	_ = v.BindEnv("storage.redis.pool_size", "REDIS_POOL_SIZE")
	_ = v.BindEnv("storage.sqlite.path", "SQLITE_PATH")
	_ = v.BindEnv("storage.postgres.uri", "POSTGRES_URI", "DATABASE_URL")
	_ = v.BindEnv("storage.postgres.max_conns", "POSTGRES_MAX_CONNS")
	_ = v.BindEnv("storage.postgres.max_idle_conns", "POSTGRES_MAX_IDLE_CONNS")

	var config AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *AppConfig) Validate() error {
	if c.ServiceName == "" {
		return errors.New("service_name is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Storage.Redis.URL == "" {
			return errors.New("storage.redis.url is required")
		}
	case "sqlite":
		if c.Storage.SQLite.Path == "" {
			return errors.New("storage.sqlite.path is required")
		}
	case "postgres":
		if c.Storage.Postgres.URI == "" {
			return errors.New("storage.postgres.uri is required")
		}
	default:
		return fmt.Errorf("storage.type %q must be one of memory, redis, sqlite, postgres", c.Storage.Type)
	}
	return nil
}
