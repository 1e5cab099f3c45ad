package healthcheckController

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger зависимость, доступность которой проверяет /ready
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCheckController struct {
	cache Pinger // может быть nil, если кэш выключен
	log   *slog.Logger
}

func New(cache Pinger, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		cache: cache,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "astro-transits",
	})
}

// ready проверка готовности (проверяет кэш, если он включён)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if c.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
		defer cancel()

		if err := c.cache.Ping(pingCtx); err != nil {
			c.log.Error("cache not ready", "error", err)
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "cache unavailable",
			})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}
