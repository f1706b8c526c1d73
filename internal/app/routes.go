package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tonimnim/Komiut-sub007/internal/handlers"
)

func (a *App) RegisterRoutes(h *handlers.TopupHandler) {
	topups := a.Router.Group("/topups")
	topups.POST("", h.StartTopup)
	topups.GET("/:id", h.GetTopup)
	topups.GET("/:id/events", h.StreamTopupEvents)
	topups.DELETE("/:id", h.CancelTopup)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
