package stock

import (
	"fmt"
	"time"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
)

// MoveEvent is an inventory movement notification from the stock system of
// record. SrcLocationID/DestLocationID of 0 mean the move crosses the
// service's boundary on that side (receipt or delivery).
type MoveEvent struct {
	EventID        string    `json:"event_id"`
	ProductID      int64     `json:"product_id"`
	SrcLocationID  int64     `json:"src_location_id,omitempty"`
	DestLocationID int64     `json:"dest_location_id,omitempty"`
	CompanyID      int64     `json:"company_id"`
	Quantity       float64   `json:"quantity"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func (m MoveEvent) Validate() error {
	if m.EventID == "" {
		return fmt.Errorf("%w: missing event_id", apperror.ErrInvalidMove)
	}
	if m.ProductID == 0 {
		return fmt.Errorf("%w: missing product_id", apperror.ErrInvalidMove)
	}
	if m.CompanyID == 0 {
		return fmt.Errorf("%w: missing company_id", apperror.ErrInvalidMove)
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperror.ErrInvalidMove)
	}
	if m.SrcLocationID == 0 && m.DestLocationID == 0 {
		return fmt.Errorf("%w: move must reference at least one location", apperror.ErrInvalidMove)
	}
	return nil
}
