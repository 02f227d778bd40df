package posconfig_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nhoxwy/pos-availability/internal/controller/apperror"
	"github.com/nhoxwy/pos-availability/internal/domain/pos"
	"github.com/nhoxwy/pos-availability/pkg/postgres"
)

type PgPosConfigRepo struct {
	pg      *postgres.Postgres
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgPosConfigRepo(pg *postgres.Postgres) pos.ConfigRepo {
	return &PgPosConfigRepo{
		pg:      pg,
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

// GetConfig loads a POS config with its picking type source location and
// warehouse lot stock joined in, so location resolution needs no further
// round trips.
func (r *PgPosConfigRepo) GetConfig(ctx context.Context, id int64) (pos.Config, error) {
	query, args, err := r.builder.
		Select(
			"pc.id", "pc.name", "pc.company_id", "pc.active",
			"pc.picking_type_id", "pt.default_location_src_id",
			"pc.warehouse_id", "wh.lot_stock_id",
		).
		From("pos_configs pc").
		LeftJoin("picking_types pt ON pt.id = pc.picking_type_id").
		LeftJoin("warehouses wh ON wh.id = pc.warehouse_id").
		Where(squirrel.Eq{"pc.id": id}).
		ToSql()
	if err != nil {
		return pos.Config{}, fmt.Errorf("build config query: %w", err)
	}

	row := r.db.QueryRow(ctx, query, args...)

	var c pos.Config
	err = row.Scan(
		&c.ID, &c.Name, &c.CompanyID, &c.Active,
		&c.PickingTypeID, &c.DefaultLocationSrcID,
		&c.WarehouseID, &c.LotStockID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pos.Config{}, apperror.ErrConfigNotFound
		}
		return pos.Config{}, fmt.Errorf("scan config row: %w", err)
	}

	return c, nil
}
