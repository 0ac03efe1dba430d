// Package metrics exposes prometheus collectors for the trending pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TrendingCacheHits counts trending requests served from the merged cache.
	TrendingCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamsub_trending_cache_hits_total",
		Help: "Trending requests served from the aggregation cache.",
	})

	// TrendingCacheMisses counts trending requests that triggered a fan-out.
	TrendingCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streamsub_trending_cache_misses_total",
		Help: "Trending requests that fanned out to providers.",
	})

	// ProviderFailures counts failed provider fetches during fan-out.
	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamsub_provider_failures_total",
		Help: "Provider fetch failures during trending fan-out.",
	}, []string{"platform"})

	// PollCycles counts completed background poll cycles per platform.
	PollCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streamsub_poll_cycles_total",
		Help: "Completed live-status poll cycles.",
	}, []string{"platform", "outcome"})
)
