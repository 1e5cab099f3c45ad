package astroApi

import (
	"context"
	"errors"
	"testing"
	"time"

	astroApiAdapter "github.com/admin/tg-bots/astro-transits/internal/adapters/secondary/astroApi"
	"github.com/admin/tg-bots/astro-transits/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalculator struct {
	resp *astroApiAdapter.ChartResponse
	err  error
	got  astroApiAdapter.ChartRequest
}

func (f *fakeCalculator) CalculateChart(_ context.Context, req astroApiAdapter.ChartRequest) (*astroApiAdapter.ChartResponse, error) {
	f.got = req
	return f.resp, f.err
}

func ptr(v float64) *float64 { return &v }

func testMoment() domain.TransitMoment {
	return domain.NewTransitMoment(time.Date(2026, time.March, 21, 14, 7, 33, 0, time.FixedZone("Europe/Moscow", 3*60*60)))
}

func okResponse(data *astroApiAdapter.ChartData) *astroApiAdapter.ChartResponse {
	return &astroApiAdapter.ChartResponse{Status: "success", Data: data, RawJSON: "{}"}
}

func TestBuildChartRequest(t *testing.T) {
	calc := &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{
		Planets:    []astroApiAdapter.PlanetPosition{{Name: "Sun", Sign: "Ari", Degree: 0.5}},
		LunarPhase: &astroApiAdapter.LunarPhase{MoonPhase: 1, MoonPhaseName: "New Moon"},
	})}
	svc := &Service{client: calc}

	_, err := svc.BuildChart(context.Background(), testMoment(), domain.Moscow)
	require.NoError(t, err)

	bd := calc.got.Subject.BirthData
	assert.Equal(t, "Daily Transit", calc.got.Subject.Name)
	assert.Equal(t, 2026, bd.Year)
	assert.Equal(t, 3, bd.Month)
	assert.Equal(t, 21, bd.Day)
	assert.Equal(t, 14, bd.Hour)
	assert.Equal(t, 7, bd.Minute)
	assert.Equal(t, "Moscow", bd.City)
	assert.Equal(t, "RU", bd.CountryCode)
	assert.Equal(t, 55.7558, bd.Latitude)
	assert.Equal(t, 37.6173, bd.Longitude)
	assert.Equal(t, "Europe/Moscow", bd.Timezone)
	assert.Contains(t, calc.got.Options.ActivePoints, "Pluto")
}

func TestBuildChartMapping(t *testing.T) {
	calc := &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{
		Planets: []astroApiAdapter.PlanetPosition{
			{Name: "Sun", Sign: "Ari", Degree: 0.5, AbsPos: 0.5},
			{Name: "Mercury", Sign: "Pis", Degree: 27.345, AbsPos: 357.345, Retrograde: true},
		},
		Aspects: []astroApiAdapter.Aspect{
			{Planet1: "Sun", Planet2: "Mercury", Aspect: "conjunction", Orb: 3.155},
		},
		LunarPhase: &astroApiAdapter.LunarPhase{MoonPhase: 14, MoonPhaseName: "Full Moon", DegreesBetween: ptr(175)},
	})}
	svc := &Service{client: calc}

	chart, err := svc.BuildChart(context.Background(), testMoment(), domain.Moscow)
	require.NoError(t, err)

	require.Len(t, chart.Planets, 2)
	assert.Equal(t, domain.PlanetPosition{Name: "Mercury", Sign: "Pis", Position: 27.345, AbsPosition: 357.345, Retrograde: true}, chart.Planets[1])
	require.Len(t, chart.Aspects, 1)
	assert.Equal(t, domain.Aspect{Planet1: "Sun", Planet2: "Mercury", Type: "conjunction", Orb: 3.155}, chart.Aspects[0])
	assert.Equal(t, domain.LunarPhase{Name: "Full Moon", Phase: 14, DegreesBetween: 175}, chart.LunarPhase)
}

func TestBuildChartLunarPhaseFallbacks(t *testing.T) {
	t.Run("from degrees between", func(t *testing.T) {
		calc := &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{
			Planets:    []astroApiAdapter.PlanetPosition{{Name: "Sun"}},
			LunarPhase: &astroApiAdapter.LunarPhase{DegreesBetween: ptr(250)},
		})}

		chart, err := (&Service{client: calc}).BuildChart(context.Background(), testMoment(), domain.Moscow)
		require.NoError(t, err)
		assert.Equal(t, "Last Quarter", chart.LunarPhase.Name)
	})

	t.Run("from sun and moon longitudes", func(t *testing.T) {
		calc := &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{
			Planets: []astroApiAdapter.PlanetPosition{
				{Name: "Sun", AbsPos: 100},
				{Name: "Moon", AbsPos: 105},
			},
		})}

		chart, err := (&Service{client: calc}).BuildChart(context.Background(), testMoment(), domain.Moscow)
		require.NoError(t, err)
		assert.Equal(t, "New Moon", chart.LunarPhase.Name)
	})

	t.Run("missing", func(t *testing.T) {
		calc := &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{
			Planets: []astroApiAdapter.PlanetPosition{{Name: "Sun"}},
		})}

		_, err := (&Service{client: calc}).BuildChart(context.Background(), testMoment(), domain.Moscow)
		assert.ErrorIs(t, err, domain.ErrLunarPhaseNotFound)
	})
}

func TestBuildChartErrors(t *testing.T) {
	tests := []struct {
		name    string
		calc    *fakeCalculator
		wantErr string
	}{
		{
			name:    "client error",
			calc:    &fakeCalculator{err: errors.New("connection refused")},
			wantErr: "failed to calculate chart: connection refused",
		},
		{
			name:    "empty body",
			calc:    &fakeCalculator{resp: &astroApiAdapter.ChartResponse{}},
			wantErr: "astro API returned empty response",
		},
		{
			name:    "error status",
			calc:    &fakeCalculator{resp: &astroApiAdapter.ChartResponse{Status: "error", Code: 422, Message: "bad date", RawJSON: "{}"}},
			wantErr: "status=error, code=422, message=bad date",
		},
		{
			name:    "no planets",
			calc:    &fakeCalculator{resp: okResponse(&astroApiAdapter.ChartData{})},
			wantErr: domain.ErrEmptyChart.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Service{client: tt.calc}).BuildChart(context.Background(), testMoment(), domain.Moscow)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
