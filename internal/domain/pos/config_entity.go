package pos

// Config is a point-of-sale configuration joined with its picking type and
// warehouse stock location references.
type Config struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
	Active    bool   `json:"active"`

	PickingTypeID        *int64 `json:"picking_type_id,omitempty"`
	DefaultLocationSrcID *int64 `json:"default_location_src_id,omitempty"`

	WarehouseID *int64 `json:"warehouse_id,omitempty"`
	LotStockID  *int64 `json:"lot_stock_id,omitempty"`
}

// SourceLocationID resolves the location the POS sells from: the picking
// type's default source location, falling back to the warehouse's lot stock.
// ok is false when neither is set.
func (c Config) SourceLocationID() (int64, bool) {
	if c.DefaultLocationSrcID != nil {
		return *c.DefaultLocationSrcID, true
	}
	if c.LotStockID != nil {
		return *c.LotStockID, true
	}
	return 0, false
}
