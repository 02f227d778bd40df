package webhook

import (
	"context"

	"github.com/nhoxwy/pos-availability/internal/domain/stock"
)

// SyncProcessor applies stock moves by calling the stock service directly.
type SyncProcessor struct {
	stockService *stock.StockService
}

func NewSyncProcessor(stockService *stock.StockService) *SyncProcessor {
	return &SyncProcessor{
		stockService: stockService,
	}
}

func (p *SyncProcessor) ProcessStockMove(ctx context.Context, event stock.MoveEvent) error {
	return p.stockService.ApplyMove(ctx, event)
}
