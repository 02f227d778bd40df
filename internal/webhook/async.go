package webhook

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nhoxwy/pos-availability/internal/domain/stock"
	"github.com/nhoxwy/pos-availability/internal/messaging"
)

// AsyncProcessor publishes stock moves to Kafka for the consumer to apply.
type AsyncProcessor struct {
	movePublisher messaging.Publisher
}

func NewAsyncProcessor(movePublisher messaging.Publisher) *AsyncProcessor {
	return &AsyncProcessor{
		movePublisher: movePublisher,
	}
}

func (p *AsyncProcessor) ProcessStockMove(ctx context.Context, event stock.MoveEvent) error {
	// Partition by product so moves of one product stay ordered.
	key := strconv.FormatInt(event.ProductID, 10)

	envelope, err := messaging.NewEnvelope(key, "stock.move", event)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return p.movePublisher.Publish(ctx, envelope)
}
