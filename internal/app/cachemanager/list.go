package cachemanager

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PushListAfter appends value to the tail of the list, creating it if needed.
// It returns the new length.
func (m *Manager) PushListAfter(ctx context.Context, key string, value any) (int64, error) {
	return m.push(ctx, "rpush", key, value, m.store.RPush)
}

// PushListTop prepends value to the head of the list, creating it if needed.
// It returns the new length.
func (m *Manager) PushListTop(ctx context.Context, key string, value any) (int64, error) {
	return m.push(ctx, "lpush", key, value, m.store.LPush)
}

// RPushX appends value only when the list already exists. It returns 0 otherwise.
func (m *Manager) RPushX(ctx context.Context, key string, value any) (int64, error) {
	return m.push(ctx, "rpushx", key, value, m.store.RPushX)
}

// RmListTop removes and returns the head of the list.
func (m *Manager) RmListTop(ctx context.Context, key string) (string, bool, error) {
	return m.pop(ctx, "lpop", key, m.store.LPop)
}

// RmListAfter removes and returns the tail of the list.
func (m *Manager) RmListAfter(ctx context.Context, key string) (string, bool, error) {
	return m.pop(ctx, "rpop", key, m.store.RPop)
}

// GetListLen returns the list length, 0 when the key does not exist.
func (m *Manager) GetListLen(ctx context.Context, key string) (int64, error) {
	k := m.PrefixKey(key)
	start := time.Now()

	n, err := m.store.LLen(ctx, k).Result()
	m.finish(ctx, "llen", k, start, true, err)
	return n, err
}

// GetListIndex returns the element at index. Negative indexes count from the tail.
func (m *Manager) GetListIndex(ctx context.Context, key string, index int64) (string, bool, error) {
	k := m.PrefixKey(key)
	start := time.Now()

	val, found, err := stringResult(m.store.LIndex(ctx, k, index))
	m.finish(ctx, "lindex", k, start, found, err)
	return val, found, err
}

// SetListValue overwrites the element at index. An index outside the list
// yields ErrIndexOutOfRange.
func (m *Manager) SetListValue(ctx context.Context, key string, index int64, value any) error {
	if !isElement(value) {
		return invalidArgument("unsupported list element %T", value)
	}

	k := m.PrefixKey(key)
	start := time.Now()

	err := m.store.LSet(ctx, k, index, value).Err()
	if err != nil && replyHasPrefix(err, "ERR index out of range") {
		err = fmt.Errorf("%w: %d: %w", ErrIndexOutOfRange, index, err)
	}
	m.finish(ctx, "lset", k, start, true, err)
	return err
}

type pushFunc func(ctx context.Context, key string, values ...any) *redis.IntCmd

func (m *Manager) push(ctx context.Context, op, key string, value any, fn pushFunc) (int64, error) {
	if !isElement(value) {
		return 0, invalidArgument("unsupported list element %T", value)
	}

	k := m.PrefixKey(key)
	start := time.Now()

	n, err := fn(ctx, k, value).Result()
	m.finish(ctx, op, k, start, n > 0, err)
	return n, err
}

type popFunc func(ctx context.Context, key string) *redis.StringCmd

func (m *Manager) pop(ctx context.Context, op, key string, fn popFunc) (string, bool, error) {
	k := m.PrefixKey(key)
	start := time.Now()

	val, found, err := stringResult(fn(ctx, k))
	m.finish(ctx, op, k, start, found, err)
	return val, found, err
}
