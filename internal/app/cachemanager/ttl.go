package cachemanager

import (
	"math"
	"strings"
)

// Unit is the time unit of a TTL amount.
type Unit string

const (
	UnitHour        Unit = "h"
	UnitMinute      Unit = "m"
	UnitSecond      Unit = "s"
	UnitMillisecond Unit = "ms"
)

// TTL is the expiry attached to a string entry. A nil *TTL means no expiry.
type TTL struct {
	Amount int64
	Unit   Unit // case-insensitive; empty means seconds
}

// Expire is shorthand for &TTL{Amount: amount, Unit: unit}.
func Expire(amount int64, unit Unit) *TTL {
	return &TTL{Amount: amount, Unit: unit}
}

// expiry maps the TTL onto the store's native SET option: EX with seconds
// for h/m/s, PX with milliseconds for ms.
func (t TTL) expiry() (mode string, amount int64, err error) {
	if t.Amount < 0 {
		return "", 0, invalidArgument("ttl must not be negative, got %d", t.Amount)
	}

	unit := Unit(strings.ToLower(string(t.Unit)))
	if unit == "" {
		unit = UnitSecond
	}

	switch unit {
	case UnitHour:
		if t.Amount > math.MaxInt64/3600 {
			return "", 0, invalidArgument("ttl %d%s overflows", t.Amount, unit)
		}
		return "ex", t.Amount * 3600, nil
	case UnitMinute:
		if t.Amount > math.MaxInt64/60 {
			return "", 0, invalidArgument("ttl %d%s overflows", t.Amount, unit)
		}
		return "ex", t.Amount * 60, nil
	case UnitSecond:
		return "ex", t.Amount, nil
	case UnitMillisecond:
		return "px", t.Amount, nil
	default:
		return "", 0, invalidArgument("unit must be h/m/s/ms, got %q", t.Unit)
	}
}
