// Package cachemanager namespaces cache keys under an application prefix and
// exposes string and list operations on top of a Redis store handle.
//
// Every operation composes the effective key "{prefix}_{key}" and issues a
// single store command. Nothing is retried and no state is kept besides the
// prefix, so concurrent use is as safe as the underlying client.
package cachemanager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"prefix-cache/internal/pkg/cache"
	"prefix-cache/internal/pkg/logger"
	"prefix-cache/internal/pkg/observability/metrics"
)

// Manager is a prefixed cache client over a Redis store.
type Manager struct {
	store  cache.Store
	prefix string
}

// New returns a Manager that stores every key under prefix.
func New(store cache.Store, prefix string) *Manager {
	return &Manager{store: store, prefix: prefix}
}

// Prefix returns the namespace prefix.
func (m *Manager) Prefix() string {
	return m.prefix
}

// PrefixKey returns the effective store key for key.
func (m *Manager) PrefixKey(key string) string {
	return m.prefix + "_" + key
}

// Set stores a string entry. A nil ttl stores it without expiry; otherwise
// the amount is converted to seconds (h/m/s) or milliseconds (ms) and sent
// as SET ... EX/PX. The store decides what a zero amount means.
func (m *Manager) Set(ctx context.Context, key string, value any, ttl *TTL) error {
	if key == "" {
		return invalidArgument("key is required")
	}
	if value == nil {
		return invalidArgument("value is required")
	}
	if !isScalar(value) {
		return invalidArgument("value must be a string or number, got %T", value)
	}

	k := m.PrefixKey(key)
	start := time.Now()

	if ttl == nil {
		err := m.store.Set(ctx, k, value, 0).Err()
		m.finish(ctx, "set", k, start, true, err)
		return err
	}

	mode, amount, err := ttl.expiry()
	if err != nil {
		return err
	}
	err = m.store.Do(ctx, "set", k, value, mode, amount).Err()
	m.finish(ctx, "set", k, start, true, err)
	return err
}

// Get returns the string entry stored under key. found is false when the key
// does not exist. A key holding a non-string value yields ErrTypeMismatch.
func (m *Manager) Get(ctx context.Context, key string) (value string, found bool, err error) {
	if key == "" {
		return "", false, invalidArgument("key is required")
	}

	k := m.PrefixKey(key)
	start := time.Now()

	value, found, err = stringResult(m.store.Get(ctx, k))
	if err != nil && replyHasPrefix(err, "WRONGTYPE") {
		err = fmt.Errorf("%w: get only supports string-type entries: %w", ErrTypeMismatch, err)
	}
	m.finish(ctx, "get", k, start, found, err)

	if err == nil {
		if found {
			metrics.CacheHits.Inc()
		} else {
			metrics.CacheMisses.Inc()
		}
	}
	return value, found, err
}

// Has reports whether a string entry exists under key.
func (m *Manager) Has(ctx context.Context, key string) (bool, error) {
	_, found, err := m.Get(ctx, key)
	return found, err
}

// Del removes key and returns the number of keys removed.
func (m *Manager) Del(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, invalidArgument("key is required")
	}

	k := m.PrefixKey(key)
	start := time.Now()

	n, err := m.store.Del(ctx, k).Result()
	m.finish(ctx, "del", k, start, n > 0, err)
	return n, err
}

// stringResult unpacks a string reply, turning redis.Nil into found=false.
func stringResult(cmd *redis.StringCmd) (string, bool, error) {
	val, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// finish records metrics for op and logs failures.
func (m *Manager) finish(ctx context.Context, op, key string, start time.Time, found bool, err error) {
	result := metrics.ResultOK
	switch {
	case err != nil:
		result = metrics.ResultError
		logger.WarnCtx(ctx, "cache operation failed",
			zap.String("op", op),
			zap.String("key", key),
			zap.Error(err),
		)
	case !found:
		result = metrics.ResultMiss
	}
	metrics.ObserveOperation(op, result, start)
}
