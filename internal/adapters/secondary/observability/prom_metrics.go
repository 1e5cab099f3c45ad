package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "astro_transits"

// PromMetrics метрики сервиса в prometheus
type PromMetrics struct {
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	chartLatency  prometheus.Histogram
	chartFailures prometheus.Counter
	cacheLookups  *prometheus.CounterVec
}

// NewPromMetrics создаёт и регистрирует метрики в reg
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	m := &PromMetrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		chartLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_build_duration_seconds",
			Help:      "Latency of building a transit chart through the astrology API.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		chartFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_build_failures_total",
			Help:      "Transit chart builds that ended with an error.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_cache_lookups_total",
			Help:      "Chart cache lookups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.httpRequests, m.httpLatency, m.chartLatency, m.chartFailures, m.cacheLookups)

	return m
}

func (m *PromMetrics) ObserveHTTPRequest(method, route string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (m *PromMetrics) ObserveChartBuild(latency time.Duration, err error) {
	m.chartLatency.Observe(latency.Seconds())
	if err != nil {
		m.chartFailures.Inc()
	}
}

func (m *PromMetrics) IncCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
