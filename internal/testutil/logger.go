package testutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *zap.Logger {
	return zap.NewNop()
}

// ObservedLogger returns a logger whose entries can be inspected
func ObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}
