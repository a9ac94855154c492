package probe

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"go.uber.org/zap"

	"prefix-cache/internal/app/cachemanager"
	"prefix-cache/internal/pkg/logger"
	"prefix-cache/internal/pkg/observability/metrics"
)

// Prober periodically runs a write/read/delete round through the cache
// manager against the live store.
type Prober struct {
	Cache  *cachemanager.Manager
	Config *Config
}

type Config struct {
	Interval time.Duration     // Time between rounds
	Key      string            // Base key for probe entries
	TTL      *cachemanager.TTL // Expiry of the probe string entry
}

// Run performs a round immediately and then every Interval until ctx is done.
func (p *Prober) Run(ctx context.Context) {
	defer p.recoverProbe()

	logger.Info("Starting cache probe",
		zap.String("prefix", p.Cache.Prefix()),
		zap.Duration("interval", p.Config.Interval),
	)

	for {
		p.round(ctx)

		select {
		case <-ctx.Done():
			logger.Info("Stopping cache probe")
			return
		case <-time.After(p.Config.Interval):
		}
	}
}

func (p *Prober) round(ctx context.Context) {
	if err := p.Check(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.ErrorCtx(ctx, "Cache probe failed", zap.Error(err))
		metrics.StoreUp.Set(0)
		metrics.ProbeFailures.Inc()
		return
	}
	metrics.StoreUp.Set(1)
}

// Check runs one probe round and returns the first failure.
func (p *Prober) Check(ctx context.Context) (err error) {
	token := strconv.FormatInt(time.Now().UnixNano(), 10)
	key := p.Config.Key
	listKey := key + ":" + token

	// the list key has no expiry, so a failed round must remove it
	defer func() {
		if err == nil {
			return
		}
		if _, delErr := p.Cache.Del(context.WithoutCancel(ctx), listKey); delErr != nil {
			logger.WarnCtx(ctx, "Cache probe cleanup failed", zap.String("key", p.Cache.PrefixKey(listKey)), zap.Error(delErr))
		}
	}()

	if err := p.Cache.Set(ctx, key, token, p.Config.TTL); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	got, found, err := p.Cache.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !found || got != token {
		return fmt.Errorf("get %s: read %q (found=%v), wrote %q", key, got, found, token)
	}

	if _, err := p.Cache.PushListAfter(ctx, listKey, token); err != nil {
		return fmt.Errorf("push %s: %w", listKey, err)
	}
	n, err := p.Cache.GetListLen(ctx, listKey)
	if err != nil {
		return fmt.Errorf("len %s: %w", listKey, err)
	}
	if n != 1 {
		return fmt.Errorf("len %s: got %d, want 1", listKey, n)
	}
	popped, found, err := p.Cache.RmListTop(ctx, listKey)
	if err != nil {
		return fmt.Errorf("pop %s: %w", listKey, err)
	}
	if !found || popped != token {
		return fmt.Errorf("pop %s: got %q (found=%v), want %q", listKey, popped, found, token)
	}

	if _, err := p.Cache.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}

	logger.DebugCtx(ctx, "Cache probe ok", zap.String("key", p.Cache.PrefixKey(key)))
	return nil
}

func (p *Prober) recoverProbe() {
	if r := recover(); r != nil {
		logger.Error("Probe panic",
			zap.Any("panic", r),
			zap.String("stack", string(debug.Stack())),
		)
	}
}
