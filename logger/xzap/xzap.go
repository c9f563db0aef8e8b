package xzap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CtxTraceID carries a per-request trace id through context.
const CtxTraceID = "trace_id"

var logger *zap.Logger

func init() {
	logger, _ = zap.NewProduction()
}

// SetUp replaces the package logger according to the configured level.
// Call once at startup, before any WithContext use.
func SetUp(level string) error {
	lv := zapcore.InfoLevel
	if err := lv.UnmarshalText([]byte(level)); err != nil && level != "" {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lv)
	l, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// WithContext returns the logger annotated with the request trace id when
// the context carries one.
func WithContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return logger
	}
	if v := ctx.Value(CtxTraceID); v != nil {
		if id, ok := v.(string); ok && id != "" {
			return logger.With(zap.String(CtxTraceID, id))
		}
	}
	return logger
}

func Sync() {
	_ = logger.Sync()
}
