// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// request ID already attached, so every log line from a page controller is
// automatically correlated:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order placed", "order_id", order.ID, "total", order.Total)
//	// → time=... level=INFO msg="order placed" request_id=a1b2c3d4 order_id=QS482913 total=217
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/quickstationery/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		opts := &slog.HandlerOptions{Level: slog.LevelInfo}
		handler = slog.NewJSONHandler(os.Stdout, opts) // structured JSON for log aggregators
	default:
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		handler = slog.NewTextHandler(os.Stdout, opts) // human-readable for dev
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped *slog.Logger stored in ctx by the
// Logger middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the Logger middleware — not usually needed in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
