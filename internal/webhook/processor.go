package webhook

import (
	"context"

	"github.com/nhoxwy/pos-availability/internal/domain/stock"
)

// Processor defines the interface for processing stock move webhooks.
// Implementations can handle moves synchronously or asynchronously.
type Processor interface {
	ProcessStockMove(ctx context.Context, event stock.MoveEvent) error
}
