package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nhoxwy/pos-availability/internal/controller/http/handlers"
	"github.com/nhoxwy/pos-availability/pkg/health"
	"github.com/nhoxwy/pos-availability/pkg/metrics"
)

type Router struct {
	posData handlers.PosDataHandler
	product handlers.ProductHandler
	stock   handlers.StockHandler
	webhook handlers.WebhookHandler

	healthRegistry *health.Registry
}

func NewRouter(
	posData handlers.PosDataHandler,
	product handlers.ProductHandler,
	stock handlers.StockHandler,
	webhook handlers.WebhookHandler,
	healthRegistry *health.Registry,
) *Router {
	router := &Router{
		posData:        posData,
		product:        product,
		stock:          stock,
		webhook:        webhook,
		healthRegistry: healthRegistry,
	}
	return router
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.POST("/webhooks/stock/moves", r.webhook.StockMove)

	engine.GET("/pos/configs/:config_id/data", r.posData.LoadData)
	engine.GET("/pos/configs/:config_id/availability", r.posData.Availability)

	engine.GET("/products", r.product.Filter)
	engine.GET("/products/:product_id", r.product.Get)

	engine.GET("/stock/quants", r.stock.Quants)

	engine.GET("/healthz", health.LivenessHandler())
	engine.GET("/readyz", health.ReadinessHandler(r.healthRegistry, 5*time.Second))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
}
