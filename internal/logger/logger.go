package logger

import (
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string
	Environment string // "development" or "production"
	ServiceName string
	File        FileConfig
}

// FileConfig configures the optional rotating JSON file sink
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a zap logger for the service.
// When a file path is configured, entries are also written as JSON to a rotating file.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level := ParseLevel(cfg.Level)
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	var opts []zap.Option
	if cfg.File.Path != "" {
		fileCore := newFileCore(cfg.File, zapConfig.EncoderConfig, zapConfig.Level)
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		}))
	}

	logger, err := zapConfig.Build(opts...)
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", cfg.ServiceName)), nil
}

func newFileCore(cfg FileConfig, encoderCfg zapcore.EncoderConfig, level zapcore.LevelEnabler) zapcore.Core {
	writer := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    max(1, cfg.MaxSizeMB),
		MaxBackups: max(0, cfg.MaxBackups),
		MaxAge:     max(0, cfg.MaxAgeDays),
		Compress:   cfg.Compress,
	}

	// No colour codes in the file
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(writer), level)
}

// ParseLevel parses the log level string, falling back to info
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}
