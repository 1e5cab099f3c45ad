package transits

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
	"github.com/admin/tg-bots/astro-transits/internal/ports/cache"
)

const cacheKeyPrefix = "astro:transits:chart:"

func chartCacheKey(moment domain.TransitMoment) string {
	return cacheKeyPrefix + moment.Key()
}

// getCachedChart ошибки кэша не роняют запрос, считаем их промахом
func (s *Service) getCachedChart(ctx context.Context, moment domain.TransitMoment) (*domain.Chart, bool) {
	if s.Cache == nil {
		return nil, false
	}

	key := chartCacheKey(moment)

	raw, err := s.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			s.Log.Warn("failed to read chart from cache", "error", err, "key", key)
		}
		s.observeCacheLookup(false)
		return nil, false
	}

	var chart domain.Chart
	if err := json.Unmarshal([]byte(raw), &chart); err != nil {
		s.Log.Warn("failed to decode cached chart", "error", err, "key", key)
		s.observeCacheLookup(false)
		return nil, false
	}

	s.observeCacheLookup(true)
	return &chart, true
}

func (s *Service) cacheChart(ctx context.Context, moment domain.TransitMoment, chart *domain.Chart) {
	if s.Cache == nil {
		return
	}

	key := chartCacheKey(moment)

	data, err := json.Marshal(chart)
	if err != nil {
		s.Log.Warn("failed to encode chart for cache", "error", err, "key", key)
		return
	}

	if err := s.Cache.Set(ctx, key, string(data), s.CacheTTL); err != nil {
		s.Log.Warn("failed to cache chart", "error", err, "key", key)
	}
}

func (s *Service) observeCacheLookup(hit bool) {
	if s.Metrics != nil {
		s.Metrics.IncCacheLookup(hit)
	}
}
