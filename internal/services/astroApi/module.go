package astroApi

import (
	"context"
	"fmt"

	astroApiAdapter "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/astro-transits/internal/domain"
	"github.com/admin/tg-bots/astro-transits/internal/ports/service"
)

const subjectName = "Daily Transit"

var activePoints = []string{
	"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
	"Mean_Node", "True_Node",
}

type chartCalculator interface {
	CalculateChart(ctx context.Context, req astroApiAdapter.ChartRequest) (*astroApiAdapter.ChartResponse, error)
}

// Service реализует IChartProvider поверх астро-API
type Service struct {
	client chartCalculator
}

// New создаёт новый сервис для работы с астро-API
func New(client *astroApiAdapter.Client) service.IChartProvider {
	return &Service{
		client: client,
	}
}

// BuildChart рассчитывает карту на момент moment для места place
func (s *Service) BuildChart(ctx context.Context, moment domain.TransitMoment, place domain.Location) (*domain.Chart, error) {
	req := astroApiAdapter.ChartRequest{
		Subject: astroApiAdapter.Person{
			Name: subjectName,
			BirthData: astroApiAdapter.BirthData{
				Year:        moment.Year,
				Month:       moment.Month,
				Day:         moment.Day,
				Hour:        moment.Hour,
				Minute:      moment.Minute,
				City:        place.City,
				CountryCode: place.Nation,
				Latitude:    place.Latitude,
				Longitude:   place.Longitude,
				Timezone:    place.Timezone,
			},
		},
		Options: astroApiAdapter.ChartOptions{
			HouseSystem:  "P", // Плацидус
			ZodiacType:   "Tropic",
			ActivePoints: activePoints,
			Precision:    2,
		},
	}

	resp, err := s.client.CalculateChart(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate chart: %w", err)
	}

	if resp.RawJSON == "" {
		return nil, fmt.Errorf("astro API returned empty response")
	}

	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("astro API returned error: status=%s, code=%d, message=%s",
			resp.Status, resp.Code, resp.Message)
	}

	if resp.Data == nil || len(resp.Data.Planets) == 0 {
		return nil, domain.ErrEmptyChart
	}

	return toDomainChart(resp.Data)
}

func toDomainChart(data *astroApiAdapter.ChartData) (*domain.Chart, error) {
	chart := &domain.Chart{
		Planets: make([]domain.PlanetPosition, 0, len(data.Planets)),
		Aspects: make([]domain.Aspect, 0, len(data.Aspects)),
	}

	for _, p := range data.Planets {
		chart.Planets = append(chart.Planets, domain.PlanetPosition{
			Name:        p.Name,
			Sign:        p.Sign,
			Position:    p.Degree,
			AbsPosition: p.AbsPos,
			Retrograde:  p.Retrograde,
		})
	}

	for _, a := range data.Aspects {
		chart.Aspects = append(chart.Aspects, domain.Aspect{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Type:    a.Aspect,
			Orb:     a.Orb,
		})
	}

	phase, err := lunarPhase(data.LunarPhase, chart)
	if err != nil {
		return nil, err
	}
	chart.LunarPhase = phase

	return chart, nil
}

// lunarPhase берёт фазу из ответа, а если её нет - считает по углу Луна-Солнце
func lunarPhase(lp *astroApiAdapter.LunarPhase, chart *domain.Chart) (domain.LunarPhase, error) {
	if lp != nil && lp.MoonPhaseName != "" {
		phase := domain.LunarPhase{
			Name:  lp.MoonPhaseName,
			Phase: lp.MoonPhase,
		}
		if lp.DegreesBetween != nil {
			phase.DegreesBetween = *lp.DegreesBetween
		}
		return phase, nil
	}

	if lp != nil && lp.DegreesBetween != nil {
		return domain.NewLunarPhase(*lp.DegreesBetween), nil
	}

	moon, moonOK := chart.Planet("Moon")
	sun, sunOK := chart.Planet("Sun")
	if moonOK && sunOK {
		return domain.LunarPhaseFromLongitudes(moon.AbsPosition, sun.AbsPosition), nil
	}

	return domain.LunarPhase{}, domain.ErrLunarPhaseNotFound
}
