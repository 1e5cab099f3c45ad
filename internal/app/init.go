package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	server "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http"
	healthcheckController "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http/controllers/healthcheck"
	infoController "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http/controllers/info"
	metricsController "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http/controllers/metrics"
	transitsController "github.com/admin/tg-bots/astro-transits/internal/adapters/primary/http/controllers/transits"
	astroApiAdapter "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/observability"
	redisAdapter "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/storage/redis"
	"github.com/admin/tg-bots/astro-transits/internal/domain"
	"github.com/admin/tg-bots/astro-transits/internal/ports/cache"
	astroApiService "github.com/admin/tg-bots/astro-transits/internal/services/astroApi"
	transitsUsecase "github.com/admin/tg-bots/astro-transits/internal/usecases/transits"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const defaultCacheTTL = time.Minute

type Dependencies struct {
	HTTPServer *http.Server
	Cache      cache.Cache // nil, если кэш выключен или недоступен
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	if a.Cfg.AstroAPI == nil || a.Cfg.AstroAPI.BaseURL == "" {
		return nil, fmt.Errorf("astro API configuration is missing")
	}

	registry := a.initRegistry()
	metrics := observability.NewPromMetrics(registry)

	chartCache := a.initCache(ctx)

	astroAPIClient := astroApiAdapter.NewClient(a.Cfg.AstroAPI, a.Log)
	chartProvider := astroApiService.New(astroAPIClient)

	cacheTTL := defaultCacheTTL
	if a.Cfg.Redis != nil {
		cacheTTL = a.Cfg.Redis.TTL()
	}

	transitService := transitsUsecase.New(
		transitsUsecase.NewResolver(domain.Moscow, nil),
		chartProvider,
		chartCache, // может быть nil
		cacheTTL,
		metrics,
		a.Log,
	)

	controllers := []server.Controller{
		infoController.New(),
		transitsController.New(transitService, a.Log),
		healthcheckController.New(chartCache, a.Log),
		metricsController.New(registry),
	}

	return &Dependencies{
		HTTPServer: server.NewHTTPServer(a.Cfg.Server, a.Log, metrics, controllers...),
		Cache:      chartCache,
	}, nil
}

// initRegistry отдельный реестр, чтобы /metrics не зависел от глобального состояния
func (a *App) initRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// initCache кэш опциональный: без него сервис считает карту на каждый запрос
func (a *App) initCache(ctx context.Context) cache.Cache {
	if a.Cfg.Redis == nil || !a.Cfg.Redis.Enabled {
		a.Log.Info("chart cache disabled")
		return nil
	}

	redisClient, err := a.Cfg.Redis.NewConnection(ctx)
	if err != nil {
		a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		return nil
	}

	a.Log.Info("redis cache connected successfully",
		"addr", a.Cfg.Redis.Addr(),
		"ttl", a.Cfg.Redis.TTL(),
	)

	return redisAdapter.NewClient(redisClient)
}
