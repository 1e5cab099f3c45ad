package transitsController

import (
	"log/slog"
	"net/http"

	"github.com/admin/tg-bots/astro-transits/internal/ports/service"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	TransitService service.ITransitService
	Log            *slog.Logger
}

func New(transitService service.ITransitService, log *slog.Logger) *Controller {
	return &Controller{
		TransitService: transitService,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/transits", c.handleTransits)
}

// handleTransits любая ошибка отдаётся клиенту как есть с кодом 500
func (c *Controller) handleTransits(ctx *gin.Context) {
	report, err := c.TransitService.GetTransits(ctx.Request.Context())
	if err != nil {
		c.Log.Error("failed to calculate transits", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, toResponse(report))
}
