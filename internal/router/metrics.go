package router

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// matchCacheMetrics contains Prometheus metrics for the match cache.
type matchCacheMetrics struct {
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions prometheus.Counter
	size      prometheus.Gauge
}

var (
	matchCacheMetricsInstance *matchCacheMetrics
	matchCacheMetricsOnce     sync.Once
)

// getMatchCacheMetrics returns the singleton match cache metrics instance.
func getMatchCacheMetrics() *matchCacheMetrics {
	matchCacheMetricsOnce.Do(func() {
		matchCacheMetricsInstance = &matchCacheMetrics{
			hits: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "router",
					Name:      "match_cache_hits_total",
					Help:      "Total number of match cache hits",
				},
			),
			misses: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "router",
					Name:      "match_cache_misses_total",
					Help:      "Total number of match cache misses",
				},
			),
			evictions: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "avarouter",
					Subsystem: "router",
					Name:      "match_cache_evictions_total",
					Help:      "Total number of full match cache clears",
				},
			),
			size: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "avarouter",
					Subsystem: "router",
					Name:      "match_cache_size",
					Help:      "Current number of entries in the match cache",
				},
			),
		}
	})
	return matchCacheMetricsInstance
}
