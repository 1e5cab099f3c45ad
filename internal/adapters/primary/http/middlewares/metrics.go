package middlewares

import (
	"time"

	"github.com/admin/tg-bots/astro-transits/internal/ports/observability"
	"github.com/gin-gonic/gin"
)

// Metrics считает запросы и их длительность по шаблону маршрута
func Metrics(metrics observability.IMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
