package pos

import "context"

type ConfigRepo interface {
	GetConfig(ctx context.Context, id int64) (Config, error)
}

// AvailabilityRepo is the slice of the stock layer the POS data service needs.
type AvailabilityRepo interface {
	AvailableByProduct(ctx context.Context, locationID, companyID int64, productIDs []int64) (map[int64]float64, error)
}

// SnapshotSink receives availability snapshots after each payload load.
type SnapshotSink interface {
	CreateAvailabilitySnapshot(ctx context.Context, snapshot AvailabilitySnapshot) error
}
