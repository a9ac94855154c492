package utils

import (
	"context"
	"time"

	"go.uber.org/zap"

	"prefix-cache/internal/pkg/logger"
)

// Retry calls fn up to attempts times, sleeping delay between failures.
// T is the return type of fn.
func Retry[T any](ctx context.Context, attempts int, delay time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		logger.WarnCtx(ctx, "retry attempt failed",
			zap.Int("attempt", i+1),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return zero, lastErr
}
