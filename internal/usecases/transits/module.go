package transits

import (
	"log/slog"
	"time"

	"github.com/admin/tg-bots/astro-transits/internal/ports/cache"
	"github.com/admin/tg-bots/astro-transits/internal/ports/observability"
	"github.com/admin/tg-bots/astro-transits/internal/ports/service"
)

// Service расчёт транзитов для фиксированной локации
type Service struct {
	Resolver      *Resolver
	ChartProvider service.IChartProvider
	Cache         cache.Cache // может быть nil
	CacheTTL      time.Duration
	Metrics       observability.IMetrics // может быть nil
	Log           *slog.Logger
}

// New создаёт сервис расчёта транзитов
func New(
	resolver *Resolver,
	chartProvider service.IChartProvider,
	cacheClient cache.Cache,
	cacheTTL time.Duration,
	metrics observability.IMetrics,
	log *slog.Logger,
) *Service {
	return &Service{
		Resolver:      resolver,
		ChartProvider: chartProvider,
		Cache:         cacheClient,
		CacheTTL:      cacheTTL,
		Metrics:       metrics,
		Log:           log,
	}
}
