package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/internal/messaging"
	"github.com/nhoxwy/pos-availability/pkg/logger"
)

// StockMoveMessageController handles stock move messages from Kafka.
type StockMoveMessageController struct {
	logger  *logger.Logger
	service *stock.StockService
}

// NewStockMoveMessageController creates a new stock move message controller.
func NewStockMoveMessageController(l *logger.Logger, s *stock.StockService) *StockMoveMessageController {
	return &StockMoveMessageController{
		logger:  l,
		service: s,
	}
}

// HandleMessage processes a single stock move message.
func (c *StockMoveMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to unmarshal envelope: key=%s error=%v", string(key), err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	c.logger.DebugCtx(ctx, "Processing stock move message: event_id=%s key=%s type=%s",
		env.EventID, env.Key, env.Type)

	var event stock.MoveEvent
	if err := json.Unmarshal(env.Payload, &event); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to unmarshal move payload: event_id=%s error=%v", env.EventID, err)
		return fmt.Errorf("unmarshal move: %w", err)
	}

	if err := c.service.ApplyMove(ctx, event); err != nil {
		// Idempotency: duplicate moves are not errors
		if errors.Is(err, apperror.ErrMoveAlreadyStored) {
			c.logger.InfoCtx(ctx, "Duplicate stock move ignored: event_id=%s move_event_id=%s product_id=%d",
				env.EventID, event.EventID, event.ProductID)
			return nil
		}

		c.logger.ErrorCtx(ctx, "Failed to apply stock move: event_id=%s move_event_id=%s product_id=%d error=%v",
			env.EventID, event.EventID, event.ProductID, err)
		return err
	}

	c.logger.InfoCtx(ctx, "Stock move applied: event_id=%s move_event_id=%s product_id=%d qty=%f",
		env.EventID, event.EventID, event.ProductID, event.Quantity)

	return nil
}
