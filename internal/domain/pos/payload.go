package pos

import (
	"time"

	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
)

// PosProduct is one product entry in the POS data payload. PosAvailableQty
// is always serialized: the quantity at the POS source location for storable
// products, null for consumables and services so the client skips the
// out-of-stock restriction.
type PosProduct struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	DefaultCode     *string             `json:"default_code"`
	Barcode         *string             `json:"barcode"`
	ListPrice       float64             `json:"list_price"`
	Type            catalog.ProductType `json:"type"`
	IsStorable      bool                `json:"is_storable"`
	PosAvailableQty *float64            `json:"pos_available_qty"`
}

// NewPosProduct maps a catalog product into its payload form. IsStorable is
// normalized so the client never has to fall back to the type field.
func NewPosProduct(p catalog.Product) PosProduct {
	return PosProduct{
		ID:          p.ID,
		Name:        p.Name,
		DefaultCode: p.DefaultCode,
		Barcode:     p.Barcode,
		ListPrice:   p.ListPrice,
		Type:        p.Type,
		IsStorable:  p.Storable(),
	}
}

// Payload is the data set a POS client loads at session start. Quantities are
// frozen at LoadedAt; the session works offline against this snapshot.
type Payload struct {
	ConfigID int64        `json:"config_id"`
	LoadedAt time.Time    `json:"loaded_at"`
	Products []PosProduct `json:"products"`
}

// AvailabilitySnapshot is the analytics record of one payload load.
type AvailabilitySnapshot struct {
	SnapshotID string       `json:"snapshot_id"`
	ConfigID   int64        `json:"config_id"`
	LoadedAt   time.Time    `json:"loaded_at"`
	Products   []PosProduct `json:"products"`
}
