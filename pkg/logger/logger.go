package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger for the application. level accepts the usual zap
// level names ("debug", "info", "warn", "error"); anything unparseable falls
// back to info.
func New(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	return cfg.Build()
}

// Must panics when the logger cannot be created.
func Must(log *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return log
}

// Named returns a child logger for the given component, or a nop logger when
// base is nil (handy in tests).
func Named(base *zap.Logger, component string) *zap.Logger {
	if base == nil {
		return zap.NewNop()
	}
	return base.Named(component)
}
