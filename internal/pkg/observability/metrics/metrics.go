package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultMiss  = "miss"
	ResultError = "error"
)

var (
	CacheOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prefix_cache_operations_total",
			Help: "Total cache operations by operation and result",
		}, []string{"op", "result"})

	CacheOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prefix_cache_operation_seconds",
			Help:    "Histogram of cache operation round-trip duration",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"})

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prefix_cache_hits_total",
			Help: "Total string reads that found a value",
		})

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prefix_cache_misses_total",
			Help: "Total string reads that found no value",
		})

	ProbeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prefix_cache_probe_failures_total",
			Help: "Total failed probe rounds against the store",
		})

	StoreUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "prefix_cache_store_up",
			Help: "1 if the last probe round succeeded, 0 otherwise",
		})
)

func Setup() {
	prometheus.MustRegister(CacheOperations)
	prometheus.MustRegister(CacheOperationDuration)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(ProbeFailures)
	prometheus.MustRegister(StoreUp)
}

// ObserveOperation records one cache operation that started at start.
func ObserveOperation(op, result string, start time.Time) {
	CacheOperations.WithLabelValues(op, result).Inc()
	CacheOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
