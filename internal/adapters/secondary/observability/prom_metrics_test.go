package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPromMetrics(reg)

	m.ObserveHTTPRequest("GET", "/transits", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/transits", 500, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/transits", "200")); got != 1 {
		t.Fatalf("expected 1 ok request, got %f", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route label, got %f", got)
	}
	if samples := testutil.CollectAndCount(m.httpLatency); samples != 2 {
		t.Fatalf("expected 2 latency series, got %d", samples)
	}

	m.ObserveChartBuild(time.Second, nil)
	m.ObserveChartBuild(time.Second, errors.New("boom"))
	if got := testutil.ToFloat64(m.chartFailures); got != 1 {
		t.Fatalf("expected 1 chart failure, got %f", got)
	}
	if samples := testutil.CollectAndCount(m.chartLatency); samples != 1 {
		t.Fatalf("expected chart latency histogram, got %d", samples)
	}

	m.IncCacheLookup(true)
	m.IncCacheLookup(false)
	m.IncCacheLookup(false)
	if got := testutil.ToFloat64(m.cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Fatalf("expected 2 cache misses, got %f", got)
	}
}

func TestNewPromMetricsDoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPromMetrics(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	NewPromMetrics(reg)
}
