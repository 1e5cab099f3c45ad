package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// служебные маршруты дёргаются пробами и скрейпером, успешные уходят в debug
var quietRoutes = map[string]struct{}{
	"/health":  {},
	"/ready":   {},
	"/metrics": {},
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()

		log.LogAttrs(c.Request.Context(), requestLogLevel(route, status), "request completed",
			slog.String("request_id", c.GetString(RequestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("response_size", c.Writer.Size()),
			slog.String("remote_addr", c.Request.RemoteAddr),
		)
	}
}

func requestLogLevel(route string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}

	if _, ok := quietRoutes[route]; ok {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
