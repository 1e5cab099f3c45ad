package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, requestLogLevel("/transits", http.StatusOK))
	assert.Equal(t, slog.LevelDebug, requestLogLevel("/health", http.StatusOK))
	assert.Equal(t, slog.LevelDebug, requestLogLevel("/metrics", http.StatusOK))
	assert.Equal(t, slog.LevelError, requestLogLevel("/ready", http.StatusServiceUnavailable))
	assert.Equal(t, slog.LevelError, requestLogLevel("/transits", http.StatusInternalServerError))
	assert.Equal(t, slog.LevelWarn, requestLogLevel("", http.StatusNotFound))
}

func TestRequestLoggerWritesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestID(), RequestLogger(log))
	router.GET("/transits", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transits", nil))

	out := buf.String()
	assert.Contains(t, out, `"route":"/transits"`)
	assert.Contains(t, out, `"request_id":"`+w.Header().Get(RequestIDHeader)+`"`)

	buf.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())
}
