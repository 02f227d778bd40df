package app

import (
	"github.com/gin-gonic/gin"

	"github.com/nhoxwy/pos-availability/pkg/logger"
	"github.com/nhoxwy/pos-availability/pkg/metrics"
)

func NewGinEngine(l *logger.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(metrics.GinMiddleware(), logger.CorrelationMiddleware(), l.GinBodyLogger(), gin.Recovery())
	return engine
}
