package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/catalog"
	"github.com/nhoxwy/pos-availability/pkg/logger"
	"github.com/nhoxwy/pos-availability/pkg/metrics"
)

type PosDataService struct {
	configRepo   ConfigRepo
	productRepo  catalog.ProductRepo
	availability AvailabilityRepo
	snapshots    SnapshotSink
	l            *logger.Logger
}

// NewPosDataService creates the POS data load service. snapshots may be nil
// when the analytics sink is disabled.
func NewPosDataService(
	configRepo ConfigRepo,
	productRepo catalog.ProductRepo,
	availability AvailabilityRepo,
	snapshots SnapshotSink,
	l *logger.Logger,
) *PosDataService {
	return &PosDataService{
		configRepo:   configRepo,
		productRepo:  productRepo,
		availability: availability,
		snapshots:    snapshots,
		l:            l,
	}
}

// LoadPosData assembles the payload a POS client loads at session start:
// every sellable product of the config's company, each storable one carrying
// the quantity available at the config's stock source location. When the
// config resolves no source location the payload still loads, with all
// quantities null, so the client falls back to unrestricted selling.
func (s *PosDataService) LoadPosData(ctx context.Context, configID int64) (Payload, error) {
	start := time.Now()

	payload, err := s.loadPosData(ctx, configID)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.PosDataLoadDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return payload, err
}

func (s *PosDataService) loadPosData(ctx context.Context, configID int64) (Payload, error) {
	cfg, err := s.configRepo.GetConfig(ctx, configID)
	if err != nil {
		return Payload{}, fmt.Errorf("load pos config: %w", err)
	}

	products, err := s.posProducts(ctx, cfg)
	if err != nil {
		return Payload{}, err
	}

	payload := Payload{
		ConfigID: cfg.ID,
		LoadedAt: time.Now().UTC(),
		Products: make([]PosProduct, 0, len(products)),
	}
	for _, p := range products {
		payload.Products = append(payload.Products, NewPosProduct(p))
	}

	if len(payload.Products) == 0 {
		return payload, nil
	}

	locationID, ok := cfg.SourceLocationID()
	if !ok {
		// No clear stock location: leave every quantity null so the client
		// does not restrict sales on wrong assumptions.
		s.l.WarnCtx(ctx, "POS config has no stock source location, loading without availability: config_id=%d", cfg.ID)
		return payload, nil
	}

	productIDs := make([]int64, 0, len(payload.Products))
	for _, p := range payload.Products {
		productIDs = append(productIDs, p.ID)
	}

	qtyByProduct, err := s.availability.AvailableByProduct(ctx, locationID, cfg.CompanyID, productIDs)
	if err != nil {
		return Payload{}, fmt.Errorf("aggregate availability: %w", err)
	}

	for i := range payload.Products {
		p := &payload.Products[i]
		if !p.IsStorable {
			// Consumables and services stay null; the client skips the
			// restriction for them.
			metrics.PosDataProductsLoaded.WithLabelValues("false").Inc()
			continue
		}
		qty := qtyByProduct[p.ID]
		p.PosAvailableQty = &qty
		metrics.PosDataProductsLoaded.WithLabelValues("true").Inc()
	}

	s.publishSnapshot(ctx, payload)

	return payload, nil
}

// AvailabilityForProducts returns the quantity available at the config's
// source location for the given products only, without the catalog payload.
func (s *PosDataService) AvailabilityForProducts(ctx context.Context, configID int64, productIDs []int64) (map[int64]float64, error) {
	cfg, err := s.configRepo.GetConfig(ctx, configID)
	if err != nil {
		return nil, fmt.Errorf("load pos config: %w", err)
	}

	locationID, ok := cfg.SourceLocationID()
	if !ok {
		return nil, apperror.ErrNoSourceLocation
	}

	qtyByProduct, err := s.availability.AvailableByProduct(ctx, locationID, cfg.CompanyID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("aggregate availability: %w", err)
	}
	return qtyByProduct, nil
}

func (s *PosDataService) posProducts(ctx context.Context, cfg Config) ([]catalog.Product, error) {
	query, err := catalog.NewProductsQueryBuilder().
		WithCompanyIDs(cfg.CompanyID).
		OnlyPOS().
		OnlyActive().
		WithSort("name", "asc").
		Build()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	products, err := s.productRepo.GetProducts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load pos products: %w", err)
	}
	return products, nil
}

// publishSnapshot records the load for analytics. Failures are logged and
// never fail the load itself.
func (s *PosDataService) publishSnapshot(ctx context.Context, payload Payload) {
	if s.snapshots == nil {
		return
	}

	snapshot := AvailabilitySnapshot{
		SnapshotID: uuid.NewString(),
		ConfigID:   payload.ConfigID,
		LoadedAt:   payload.LoadedAt,
		Products:   payload.Products,
	}
	if err := s.snapshots.CreateAvailabilitySnapshot(ctx, snapshot); err != nil {
		s.l.ErrorCtx(ctx, "Failed to store availability snapshot: config_id=%d error=%v", payload.ConfigID, err)
	}
}
