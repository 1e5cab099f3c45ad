package transits

import (
	"context"
	"time"

	"github.com/admin/tg-bots/astro-transits/internal/domain"
)

// GetTransits считает транзиты на текущий момент.
// Любая ошибка (в том числе паника внешнего расчёта) возвращается как есть, без классификации.
func (s *Service) GetTransits(ctx context.Context) (*domain.TransitReport, error) {
	moment, err := s.Resolver.Resolve()
	if err != nil {
		return nil, err
	}

	chart, err := s.chart(ctx, moment)
	if err != nil {
		return nil, err
	}

	return buildReport(moment, chart), nil
}

// chart достаёт карту из кэша или строит её заново
func (s *Service) chart(ctx context.Context, moment domain.TransitMoment) (*domain.Chart, error) {
	if chart, ok := s.getCachedChart(ctx, moment); ok {
		return chart, nil
	}

	chart, err := s.buildChart(ctx, moment)
	if err != nil {
		return nil, err
	}

	s.cacheChart(ctx, moment, chart)

	return chart, nil
}

func (s *Service) buildChart(ctx context.Context, moment domain.TransitMoment) (chart *domain.Chart, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.Log.Error("chart provider panicked", "panic", r, "moment", moment.Key())
			chart, err = nil, &domain.PanicError{Value: r}
		}
		if s.Metrics != nil {
			s.Metrics.ObserveChartBuild(time.Since(start), err)
		}
	}()

	chart, err = s.ChartProvider.BuildChart(ctx, moment, s.Resolver.Place())
	if err != nil {
		return nil, err
	}
	if chart == nil {
		return nil, domain.ErrEmptyChart
	}

	s.Log.Debug("chart built",
		"moment", moment.Key(),
		"planets", len(chart.Planets),
		"aspects", len(chart.Aspects),
		"latency", time.Since(start),
	)

	return chart, nil
}

// buildReport округляет значения и оставляет только значимые аспекты в исходном порядке
func buildReport(moment domain.TransitMoment, chart *domain.Chart) *domain.TransitReport {
	report := &domain.TransitReport{
		Moment:       moment,
		Planets:      make([]domain.PlanetPosition, 0, len(chart.Planets)),
		MajorAspects: make([]domain.Aspect, 0),
		MoonPhase:    chart.LunarPhase,
	}

	for _, p := range chart.Planets {
		p.Position = domain.Round2(p.Position)
		report.Planets = append(report.Planets, p)
	}

	for _, a := range chart.Aspects {
		a.Orb = domain.Round2(a.Orb)
		if a.IsMajor() {
			report.MajorAspects = append(report.MajorAspects, a)
		}
	}

	return report
}
