package service

import (
	"context"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
)

// IChartProvider строит карту на заданный момент и место через внешний астро-расчёт
type IChartProvider interface {
	BuildChart(ctx context.Context, moment domain.TransitMoment, place domain.Location) (*domain.Chart, error)
}
