package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weathersvc.app/internal/ports"
)

const metricsNamespace = "weather"

// PrometheusMetrics is the WeatherMetrics sink. Collectors are registered on
// the injected registerer so tests can use a private registry.
type PrometheusMetrics struct {
	providerRequests   *prometheus.CounterVec
	providerDuration   *prometheus.HistogramVec
	cacheOperations    *prometheus.CounterVec
	cacheDuration      *prometheus.HistogramVec
	resolutions        *prometheus.CounterVec
	resolutionDuration *prometheus.HistogramVec
	cacheHitRatio      prometheus.Gauge

	mu          sync.RWMutex
	hits        int64
	misses      int64
	errors      int64
	lastUpdated time.Time
}

// NewPrometheusMetrics registers the weather collectors on reg. It panics if
// they are already registered there, like promauto does.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_requests_total",
				Help:      "Upstream weather provider attempts by provider and status",
			},
			[]string{"provider", "status"},
		),
		providerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Upstream weather provider call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		cacheOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operations_total",
				Help:      "Weather cache operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		cacheDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operation_duration_seconds",
				Help:      "Weather cache operation duration in seconds",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5},
			},
			[]string{"operation"},
		),
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "resolutions_total",
				Help:      "Weather resolutions by outcome",
			},
			[]string{"outcome"},
		),
		resolutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "resolution_duration_seconds",
				Help:      "End-to-end weather resolution duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		cacheHitRatio: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hit_ratio",
				Help:      "Cache hit ratio (hits/lookups)",
			},
		),
	}
}

// RecordProviderRequest counts one provider attempt
func (m *PrometheusMetrics) RecordProviderRequest(provider, status string, duration time.Duration) {
	m.providerRequests.WithLabelValues(provider, status).Inc()
	m.providerDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordCacheOperation counts one cache call. Lookups also feed the hit ratio.
func (m *PrometheusMetrics) RecordCacheOperation(operation, status string, duration time.Duration) {
	m.cacheOperations.WithLabelValues(operation, status).Inc()
	m.cacheDuration.WithLabelValues(operation).Observe(duration.Seconds())

	if operation != ports.CacheOpGet {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch status {
	case ports.StatusHit:
		m.hits++
	case ports.StatusMiss:
		m.misses++
	case ports.StatusError:
		m.errors++
	default:
		return
	}
	m.lastUpdated = time.Now()
	if total := m.hits + m.misses; total > 0 {
		m.cacheHitRatio.Set(float64(m.hits) / float64(total))
	}
}

// RecordResolution counts one call to the resolution engine
func (m *PrometheusMetrics) RecordResolution(outcome string, duration time.Duration) {
	m.resolutions.WithLabelValues(outcome).Inc()
	m.resolutionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// GetCacheStats returns the lookup counters behind the hit ratio gauge
func (m *PrometheusMetrics) GetCacheStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		Errors:      m.errors,
		TotalOps:    m.hits + m.misses,
		LastUpdated: m.lastUpdated,
	}
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(stats.Hits) / float64(stats.TotalOps)
	}
	return stats
}
