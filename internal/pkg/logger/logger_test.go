package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWithWriter("astro_transits", &Config{Encoding: "json", Level: "debug"}, &out, &errOut)

	log.Debug("chart built", "planets", 12)

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "chart built", record["msg"])
	assert.Equal(t, "astro_transits", record["app"])
	assert.Equal(t, float64(12), record["planets"])
	assert.Zero(t, errOut.Len())
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWithWriter("astro_transits", &Config{Level: "warn"}, &out, &errOut)

	log.Info("skipped")
	log.Warn("kept")

	assert.NotContains(t, errOut.String(), "skipped")
	assert.Contains(t, errOut.String(), "kept")
	assert.Contains(t, errOut.String(), "app=astro_transits")
	assert.Zero(t, out.Len())
}

func TestNewNilConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWithWriter("app", nil, &out, &errOut)

	log.Info("hello")
	assert.Contains(t, errOut.String(), "hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Panics(t, func() { parseLevel("verbose") })
}

func TestNewUnknownEncodingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewWithWriter("app", &Config{Encoding: "xml"}, &bytes.Buffer{}, &bytes.Buffer{})
	})
}
