package observability

import "time"

// IMetrics метрики сервиса
type IMetrics interface {
	ObserveHTTPRequest(method, route string, status int, latency time.Duration)
	ObserveChartBuild(latency time.Duration, err error)
	IncCacheLookup(hit bool)
}
