package infoController

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type InfoResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// info статичный ответ, не зависит от времени и состояния
var info = InfoResponse{
	Status:  "ok",
	Message: "Astrology Transit API",
	Endpoints: map[string]string{
		"/transits": "GET - Calculate daily transits for Moscow",
		"/health":   "GET - Liveness probe",
		"/ready":    "GET - Readiness probe",
		"/metrics":  "GET - Prometheus metrics",
	},
}

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.home)
}

func (c *Controller) home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, info)
}
