package stock

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/pkg/metrics"
)

type StockService struct {
	stockRepo StockRepo
}

func NewStockService(stockRepo StockRepo) *StockService {
	return &StockService{stockRepo: stockRepo}
}

func (s *StockService) GetQuants(ctx context.Context, query QuantsQuery) ([]Quant, error) {
	quants, err := s.stockRepo.GetQuants(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter quants: %w", err)
	}
	return quants, nil
}

func (s *StockService) AvailableByProduct(ctx context.Context, locationID, companyID int64, productIDs []int64) (map[int64]float64, error) {
	qty, err := s.stockRepo.AvailableByProduct(ctx, locationID, companyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate availability: %w", err)
	}
	return qty, nil
}

// ApplyMove applies a movement to the quant table: the quantity leaves the
// source location and arrives at the destination. Only internal locations
// hold quants, so the external side of a receipt or delivery is skipped.
// The event itself is stored for idempotency; a duplicate event ID surfaces
// as apperror.ErrMoveAlreadyStored with no quant change.
func (s *StockService) ApplyMove(ctx context.Context, event MoveEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	err := s.stockRepo.InTransaction(ctx, func(tx TxStockRepo) error {
		if err := tx.CreateMoveEvent(ctx, event); err != nil {
			return fmt.Errorf("store move event: %w", err)
		}

		if event.SrcLocationID != 0 {
			src, err := tx.GetLocation(ctx, event.SrcLocationID)
			if err != nil {
				return fmt.Errorf("load src location: %w", err)
			}
			if src.Usage == UsageInternal {
				if err := tx.AddQuantity(ctx, event.ProductID, src.ID, event.CompanyID, -event.Quantity); err != nil {
					return fmt.Errorf("decrement src quant: %w", err)
				}
			}
		}

		if event.DestLocationID != 0 {
			dest, err := tx.GetLocation(ctx, event.DestLocationID)
			if err != nil {
				return fmt.Errorf("load dest location: %w", err)
			}
			if dest.Usage == UsageInternal {
				if err := tx.AddQuantity(ctx, event.ProductID, dest.ID, event.CompanyID, event.Quantity); err != nil {
					return fmt.Errorf("increment dest quant: %w", err)
				}
			}
		}

		return nil
	})

	if err != nil {
		status := "error"
		if errors.Is(err, apperror.ErrMoveAlreadyStored) {
			status = "duplicate"
		}
		metrics.StockMovesApplied.WithLabelValues(status).Inc()
		return err
	}

	metrics.StockMovesApplied.WithLabelValues("ok").Inc()
	return nil
}
