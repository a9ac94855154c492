package http

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"prefix-cache/internal/pkg/http/handler"
	"prefix-cache/internal/pkg/logger"
)

// NewMux wires the ops endpoints: /healthz and /metrics.
func NewMux(store handler.Pinger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handler.Healthz(store))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// StartHTTPServer serves the ops endpoints on addr until ctx is done.
func StartHTTPServer(ctx context.Context, addr string, store handler.Pinger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewMux(store),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	// shut down once ctx is done
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down HTTP server...")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			logger.Error("HTTP server shutdown failed", zap.Error(err))
		} else {
			logger.Info("HTTP server shut down gracefully")
		}
	}()

	return srv
}
