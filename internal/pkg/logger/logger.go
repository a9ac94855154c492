package logger

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TraceIDKey = "traceid" // Key for trace ID in logs
	SpanIDKey  = "spanid"  // Key for span ID in logs
)

// logger is a no-op until Setup runs, so packages can log without a prior Setup.
// Setup and Replace may run while other goroutines log.
var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

func current() *zap.Logger {
	return logger.Load()
}

// Setup builds the production JSON logger at the given level (debug, info, warn, error).
func Setup(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.CallerKey = "caller"
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	logger.Store(l)
	return nil
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := logger.Swap(l.WithOptions(zap.AddCallerSkip(1)))
	return func() { logger.Store(prev) }
}

// Sync flushes buffered log entries.
func Sync() error {
	return current().Sync()
}

// traceFields returns trace and span IDs carried by the span in ctx, if any.
func traceFields(ctx context.Context) []zap.Field {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String(TraceIDKey, sc.TraceID().String()),
		zap.String(SpanIDKey, sc.SpanID().String()),
	}
}

func Debug(msg string, fields ...zap.Field) {
	current().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	current().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	current().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	current().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	current().Fatal(msg, fields...)
}

// DebugCtx logs a debug message with trace and span IDs from ctx.
func DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	current().Debug(msg, append(fields, traceFields(ctx)...)...)
}

// InfoCtx logs an info message with trace and span IDs from ctx.
func InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	current().Info(msg, append(fields, traceFields(ctx)...)...)
}

// WarnCtx logs a warning with trace and span IDs from ctx.
func WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	current().Warn(msg, append(fields, traceFields(ctx)...)...)
}

// ErrorCtx logs an error with trace and span IDs from ctx.
func ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	current().Error(msg, append(fields, traceFields(ctx)...)...)
}
