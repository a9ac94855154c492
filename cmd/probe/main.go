package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"prefix-cache/configs"
	"prefix-cache/internal/app/cachemanager"
	"prefix-cache/internal/app/probe"
	redisCache "prefix-cache/internal/pkg/cache/redis"
	"prefix-cache/internal/pkg/http"
	"prefix-cache/internal/pkg/logger"
	"prefix-cache/internal/pkg/observability/metrics"
	"prefix-cache/internal/utils"
)

func main() {
	cfg, err := configs.Parse()
	if err != nil {
		panic(err)
	}

	if err := logger.Setup(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	metrics.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := redisCache.NewClient(redisCache.Config{
		Addr:       cfg.CacheRedisEndpoint,
		Password:   cfg.CacheRedisPassword,
		DB:         cfg.CacheRedisDB,
		MaxRetries: cfg.CacheRedisMaxRetries,
	})
	defer client.Close()

	if _, err := utils.Retry(ctx, 5, 2*time.Second, func() (struct{}, error) {
		return struct{}{}, redisCache.Ping(ctx, client)
	}); err != nil {
		logger.Fatal("Unable to reach redis", zap.Error(err))
	}

	manager := cachemanager.New(client, cfg.AppName)

	http.StartHTTPServer(ctx, cfg.HTTPAddr, client)

	prober := &probe.Prober{
		Cache: manager,
		Config: &probe.Config{
			Interval: cfg.ProbeIntervalDuration,
			Key:      cfg.ProbeKey,
			TTL:      cachemanager.Expire(cfg.ProbeTTL, cachemanager.Unit(cfg.ProbeTTLUnit)),
		},
	}
	prober.Run(ctx)

	logger.Info("Probe stopped")
}
