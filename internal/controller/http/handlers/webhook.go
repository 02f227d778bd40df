package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/internal/webhook"
)

type WebhookHandler struct {
	processor webhook.Processor
}

func NewWebhookHandler(p webhook.Processor) WebhookHandler {
	return WebhookHandler{processor: p}
}

// StockMove ingests a stock move notification. Depending on the configured
// mode the move is applied in-request or published to Kafka and applied by a
// worker; either way a 202 means the move was accepted for processing.
func (h *WebhookHandler) StockMove(c *gin.Context) {
	var event stock.MoveEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid move payload"})
		return
	}

	err := h.processor.ProcessStockMove(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidMove) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		} else if errors.Is(err, apperror.ErrLocationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		} else if errors.Is(err, apperror.ErrMoveAlreadyStored) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.Status(http.StatusAccepted)
}
