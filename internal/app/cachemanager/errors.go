package cachemanager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalidArgument is returned before any store call when a key, value or TTL is unusable.
	ErrInvalidArgument = errors.New("cache: invalid argument")
	// ErrTypeMismatch is returned when a string read hits a key holding another type.
	ErrTypeMismatch = errors.New("cache: type mismatch")
	// ErrIndexOutOfRange is returned when a list write targets an index outside the list.
	ErrIndexOutOfRange = errors.New("cache: index out of range")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// replyHasPrefix reports whether err is a Redis error reply starting with prefix.
func replyHasPrefix(err error, prefix string) bool {
	var rerr redis.Error
	if !errors.As(err, &rerr) {
		return false
	}
	return strings.HasPrefix(rerr.Error(), prefix)
}
