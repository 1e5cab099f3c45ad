package astroApi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{
		BaseURL:    srv.URL + "/",
		ApiVersion: "api/v4",
		ApiKey:     "secret",
		Timeout:    5 * time.Second,
	}

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCalculateChart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v4/charts/natal", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChartRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Moscow", req.Subject.BirthData.City)
		assert.Equal(t, 2026, req.Subject.BirthData.Year)
		assert.Equal(t, "Europe/Moscow", req.Subject.BirthData.Timezone)

		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"planets": [{"name": "Sun", "sign": "Lib", "degree": 24.123, "abs_pos": 204.123, "retrograde": false}],
				"aspects": [{"planet1": "Sun", "planet2": "Moon", "aspect": "trine", "orb": 1.5}],
				"lunar_phase": {"moon_phase": 9, "moon_phase_name": "First Quarter", "degrees_between_s_m": 110.2}
			}
		}`))
	})

	resp, err := client.CalculateChart(context.Background(), ChartRequest{
		Subject: Person{
			Name: "Daily Transit",
			BirthData: BirthData{
				Year:     2026,
				City:     "Moscow",
				Timezone: "Europe/Moscow",
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Planets, 1)
	assert.Equal(t, 24.123, resp.Data.Planets[0].Degree)
	require.Len(t, resp.Data.Aspects, 1)
	assert.Equal(t, "trine", resp.Data.Aspects[0].Aspect)
	require.NotNil(t, resp.Data.LunarPhase)
	assert.Equal(t, "First Quarter", resp.Data.LunarPhase.MoonPhaseName)
	require.NotNil(t, resp.Data.LunarPhase.DegreesBetween)
	assert.Equal(t, 110.2, *resp.Data.LunarPhase.DegreesBetween)
	assert.NotEmpty(t, resp.RawJSON)
}

func TestCalculateChartNon200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.CalculateChart(context.Background(), ChartRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestCalculateChartBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.CalculateChart(context.Background(), ChartRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal failed")
}

func TestCalculateChartCanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not reach the server")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CalculateChart(ctx, ChartRequest{})
	require.Error(t, err)
}

func TestBuildURL(t *testing.T) {
	c := &Client{cfg: &Config{BaseURL: "https://astro.example.com/", ApiVersion: "api/v4"}}
	assert.Equal(t, "https://astro.example.com/api/v4/charts/natal", c.buildURL(GetChart))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "abc", truncateString("abc", 5))
	assert.Equal(t, "ab...", truncateString("abcdef", 2))
}
