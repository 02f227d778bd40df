package stock

import "context"

type TxStockRepo interface {
	GetQuants(ctx context.Context, query *QuantsQuery) ([]Quant, error)
	GetLocation(ctx context.Context, id int64) (Location, error)

	// AvailableByProduct sums quant quantities grouped by product across the
	// subtree rooted at locationID, filtered to companyID. Products with no
	// quants are absent from the result.
	AvailableByProduct(ctx context.Context, locationID, companyID int64, productIDs []int64) (map[int64]float64, error)

	AddQuantity(ctx context.Context, productID, locationID, companyID int64, delta float64) error
	CreateMoveEvent(ctx context.Context, event MoveEvent) error
}

type StockRepo interface {
	TxStockRepo
	InTransaction(ctx context.Context, fn func(repo TxStockRepo) error) error
}
