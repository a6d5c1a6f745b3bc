// Package logger constructs the application wide zap sugared logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production sugared logger tagged with the service name.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel)
}

// NewWithLevel builds a sugared logger at the given minimum level.
func NewWithLevel(service string, level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]any{"service": service}

	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	return log.Sugar()
}

// ParseLevel maps a configured level name onto a zap level. An empty
// name selects info; unknown names also fall back to info, since the
// configuration layer rejects them before a logger is built.
func ParseLevel(name string) zapcore.Level {
	if name == "" {
		return zapcore.InfoLevel
	}
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// NewNop returns a logger that discards everything. Used by library
// callers that don't want engine logging.
func NewNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
